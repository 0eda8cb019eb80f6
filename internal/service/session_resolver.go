// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-chat-seal/internal/adapter"
	"github.com/MKhiriev/go-chat-seal/internal/engine"
	"github.com/MKhiriev/go-chat-seal/internal/logger"
	"github.com/MKhiriev/go-chat-seal/internal/utils"
	"github.com/MKhiriev/go-chat-seal/models"
	"golang.org/x/sync/singleflight"
)

// markerScanLimit bounds the legacy marker-message scan to the most recent
// messages exchanged with a peer.
const markerScanLimit = 50

type sessionResolver struct {
	chat   adapter.ChatAdapter
	engine engine.Engine
	cache  *sessionCache
	uuids  *utils.UUIDGenerator
	logger *logger.Logger

	group singleflight.Group
}

// NewSessionResolver builds the resolver serving Resolve calls for one
// logged-in account.
func NewSessionResolver(chat adapter.ChatAdapter, eng engine.Engine, cache *sessionCache, log *logger.Logger) SessionResolver {
	return &sessionResolver{
		chat:   chat,
		engine: eng,
		cache:  cache,
		uuids:  utils.NewUUIDGenerator(),
		logger: log,
	}
}

// Resolve implements [SessionResolver].
//
// A cached entry missing the requested direction is treated as stale: it is
// evicted and resolution restarts once. If the rebuilt entry still misses
// the direction the call fails with [ErrDirectionUnavailable] instead of
// looping.
func (r *sessionResolver) Resolve(ctx context.Context, peerUID string, needSender bool) (*CompositeSession, error) {
	if peerUID == "" {
		return nil, ErrPeerIdentifierMissing
	}

	local := r.chat.CurrentUser()
	if local == nil {
		return nil, ErrNotAuthenticated
	}

	if cs, ok := r.cache.get(peerUID); ok {
		if _, present := cs.Direction(needSender); present {
			return cs, nil
		}
		r.cache.remove(peerUID)
		r.logger.Debug().Str("peer", peerUID).Msg("evicted stale cache entry, rebuilding")
	}

	v, err, _ := r.group.Do(peerUID, func() (any, error) {
		return r.resolveRemote(ctx, local, peerUID)
	})
	if err != nil {
		return nil, err
	}

	cs := v.(*CompositeSession)
	if _, present := cs.Direction(needSender); !present {
		return nil, fmt.Errorf("%w: peer %s", ErrDirectionUnavailable, peerUID)
	}

	return cs, nil
}

// resolveRemote performs the I/O-bearing part of resolution: local metadata,
// peer metadata, legacy marker scan, session creation. Exactly one call runs
// per peer at a time (single-flight); concurrent callers share its result.
func (r *sessionResolver) resolveRemote(ctx context.Context, local *models.User, peerUID string) (*CompositeSession, error) {
	generation := r.cache.gen()

	// Local metadata is the cheapest and most authoritative source for the
	// sender direction; it always wins over the peer map and the legacy
	// scan.
	if sid, ok := local.SessionIDFor(peerUID); ok {
		sender, err := r.engine.RetrieveSession(ctx, sid, true)
		if err != nil {
			return nil, fmt.Errorf("%w: session %s: %v", ErrSessionRetrievalFailed, sid, err)
		}

		cs := NewCompositeSession(sender, nil)
		r.fillReceiver(ctx, cs, local.UID, peerUID, nil)
		r.cache.setIfCurrent(generation, peerUID, cs)
		return cs, nil
	}

	// No session recorded from our side: try recovering one from a prior
	// marker message before minting a fresh session.
	if cs, found, err := r.resolveFromMarker(ctx, local, peerUID, generation); err != nil {
		return nil, err
	} else if found {
		return cs, nil
	}

	return r.createSession(ctx, local, peerUID, generation)
}

// fillReceiver attempts to attach the receiver-direction handle from the
// peer's published session map. Absence and failure are both soft: the
// composite stays valid with only its sender half and the receiver is filled
// by a later resolution.
//
// peerUser may carry an already fetched profile; when it lacks an entry for
// the local user the profile is refetched once before giving up.
func (r *sessionResolver) fillReceiver(ctx context.Context, cs *CompositeSession, localUID, peerUID string, peerUser *models.User) {
	sid, ok := "", false
	if peerUser != nil {
		sid, ok = peerUser.SessionIDFor(localUID)
	}

	if !ok {
		fetched, err := r.chat.GetUser(ctx, peerUID)
		if err != nil {
			r.logger.Warn().Err(err).Str("peer", peerUID).Msg("peer profile fetch failed, leaving receiver direction unset")
			return
		}
		if sid, ok = fetched.SessionIDFor(localUID); !ok {
			return
		}
	}

	receiver, err := r.engine.RetrieveSession(ctx, sid, true)
	if err != nil {
		r.logger.Warn().Err(err).Str("peer", peerUID).Str("session_id", sid).Msg("receiver session retrieval failed, leaving direction unset")
		return
	}

	cs.SetReceiver(receiver)
}

// resolveFromMarker scans recent marker messages exchanged with the peer and
// recovers the session embedded in the newest decryptable one. The fetch is
// registered in the in-flight registry for its whole duration.
func (r *sessionResolver) resolveFromMarker(ctx context.Context, local *models.User, peerUID string, generation uint64) (*CompositeSession, bool, error) {
	op := r.cache.track()
	defer r.cache.untrack(op)

	messages, err := r.chat.FetchPreviousMessages(ctx, models.MessageFilter{
		PeerUID:     peerUID,
		Types:       []string{models.MarkerMessageType},
		Limit:       markerScanLimit,
		HideDeleted: true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("%w: marker scan for %s: %v", ErrRemoteLookupFailed, peerUID, err)
	}

	for _, msg := range messages {
		payload, ok := msg.CustomData[models.MarkerPayloadKey]
		if !ok || payload == "" {
			continue
		}

		session, err := r.engine.RetrieveSessionFromMessage(ctx, payload)
		if err != nil {
			r.logger.Debug().Err(err).Str("message_id", msg.ID).Msg("marker payload not recoverable, skipping")
			continue
		}

		if err = r.persistLocalSessionID(ctx, peerUID, session.ID()); err != nil {
			return nil, false, err
		}

		cs := NewCompositeSession(session, nil)
		r.fillReceiver(ctx, cs, local.UID, peerUID, nil)
		r.cache.setIfCurrent(generation, peerUID, cs)
		r.logger.Info().Str("peer", peerUID).Str("session_id", session.ID()).Msg("session recovered from marker message")
		return cs, true, nil
	}

	return nil, false, nil
}

// createSession mints a brand-new session for the relationship. Both parties
// must have a published cryptographic identity. The marker message is sent
// before the metadata write so the peer's legacy scan can discover the
// session even if the metadata write fails; the cache write happens only
// after the metadata write succeeded, so a cached session id is always a
// persisted one.
func (r *sessionResolver) createSession(ctx context.Context, local *models.User, peerUID string, generation uint64) (*CompositeSession, error) {
	localIdentity, ok := local.IdentityID()
	if !ok {
		return nil, fmt.Errorf("%w: local user %s", ErrIdentityNotProvisioned, local.UID)
	}

	peerUser, err := r.chat.GetUser(ctx, peerUID)
	if err != nil {
		return nil, fmt.Errorf("%w: peer %s: %v", ErrRemoteLookupFailed, peerUID, err)
	}
	peerIdentity, ok := peerUser.IdentityID()
	if !ok {
		return nil, fmt.Errorf("%w: peer %s", ErrIdentityNotProvisioned, peerUID)
	}

	session, err := r.engine.CreateSession(ctx, []string{localIdentity, peerIdentity})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionCreationFailed, err)
	}

	r.sendMarker(ctx, session, peerUID)

	if err = r.persistLocalSessionID(ctx, peerUID, session.ID()); err != nil {
		// The session exists in the engine but is not recorded anywhere
		// durable, so it must not be cached either: a retry rediscovers
		// it through the marker scan instead of minting a duplicate.
		return nil, err
	}

	cs := NewCompositeSession(session, nil)
	r.fillReceiver(ctx, cs, local.UID, peerUID, &peerUser)
	r.cache.setIfCurrent(generation, peerUID, cs)
	r.logger.Info().Str("peer", peerUID).Str("session_id", session.ID()).Msg("session created")

	return cs, nil
}

// sendMarker sends the in-band discovery message for a freshly created
// session: a session-encrypted random probe under the marker payload key.
// Best effort; a failed send only degrades the peer's legacy discovery.
func (r *sessionResolver) sendMarker(ctx context.Context, session engine.Session, peerUID string) {
	probe, err := session.EncryptMessage(r.uuids.Generate())
	if err != nil {
		r.logger.Warn().Err(err).Str("peer", peerUID).Msg("marker probe encryption failed")
		return
	}

	_, err = r.chat.SendMessage(ctx, models.Message{
		ReceiverUID:  peerUID,
		ReceiverType: models.ReceiverTypeUser,
		Type:         models.MarkerMessageType,
		CustomData:   map[string]string{models.MarkerPayloadKey: probe},
	})
	if err != nil {
		r.logger.Warn().Err(err).Str("peer", peerUID).Msg("marker message send failed")
	}
}

// persistLocalSessionID writes sessionID into the local user's published
// session map under peerUID. The metadata blob is replaced wholesale on the
// server, so the freshest local copy is re-read before the write.
func (r *sessionResolver) persistLocalSessionID(ctx context.Context, peerUID, sessionID string) error {
	local := r.chat.CurrentUser()
	if local == nil {
		return ErrNotAuthenticated
	}

	local.SetSessionID(peerUID, sessionID)
	if _, err := r.chat.UpdateUserMetadata(ctx, *local); err != nil {
		return fmt.Errorf("%w: session map for %s: %v", ErrRemoteWriteFailed, peerUID, err)
	}

	return nil
}
