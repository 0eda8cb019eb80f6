package engine

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-chat-seal/internal/crypto"
)

// fileMagic prefixes every encrypted file envelope. The byte after it is the
// envelope format version.
var fileMagic = []byte("CSEALF")

const fileFormatVersion = 0x01

// maxFilenameLen is the largest filename the envelope's two-byte length
// prefix can carry.
const maxFilenameLen = 1<<16 - 1

// localSession holds one unwrapped session key. Immutable after creation.
type localSession struct {
	id       string
	key      []byte
	keychain crypto.KeyChainService
}

func (s *localSession) ID() string { return s.id }

// EncryptMessage produces "<session-id>:<base64(nonce||ciphertext)>". The id
// travels in the clear so receivers can locate the session before decrypting.
func (s *localSession) EncryptMessage(clearText string) (string, error) {
	blob, err := s.keychain.Seal([]byte(clearText), s.key)
	if err != nil {
		return "", fmt.Errorf("encrypt message: %w", err)
	}

	return s.id + ":" + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *localSession) DecryptMessage(encryptedText string) (string, error) {
	sid, blob, err := parseMessageEnvelope(encryptedText)
	if err != nil {
		return "", err
	}
	if sid != s.id {
		return "", fmt.Errorf("%w: envelope session %s", ErrWrongSession, sid)
	}

	clear, err := s.keychain.Open(blob, s.key)
	if err != nil {
		return "", fmt.Errorf("decrypt message: %w", err)
	}

	return string(clear), nil
}

// EncryptFile produces magic || version || len(sid) || sid || sealed payload,
// where the sealed payload carries the filename and the file bytes. The
// session id stays outside the sealed region so the session can be resolved
// before decryption.
func (s *localSession) EncryptFile(data []byte, filename string) ([]byte, error) {
	name := []byte(filename)
	if len(name) > maxFilenameLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrFilenameTooLong, len(name))
	}

	payload := make([]byte, 0, 2+len(name)+len(data))
	payload = binary.BigEndian.AppendUint16(payload, uint16(len(name)))
	payload = append(payload, name...)
	payload = append(payload, data...)

	sealed, err := s.keychain.Seal(payload, s.key)
	if err != nil {
		return nil, fmt.Errorf("encrypt file: %w", err)
	}

	sid := []byte(s.id)
	out := make([]byte, 0, len(fileMagic)+1+2+len(sid)+len(sealed))
	out = append(out, fileMagic...)
	out = append(out, fileFormatVersion)
	out = binary.BigEndian.AppendUint16(out, uint16(len(sid)))
	out = append(out, sid...)
	out = append(out, sealed...)

	return out, nil
}

func (s *localSession) DecryptFile(data []byte) (ClearFile, error) {
	sid, sealed, err := parseFileEnvelope(data)
	if err != nil {
		return ClearFile{}, err
	}
	if sid != s.id {
		return ClearFile{}, fmt.Errorf("%w: envelope session %s", ErrWrongSession, sid)
	}

	payload, err := s.keychain.Open(sealed, s.key)
	if err != nil {
		return ClearFile{}, fmt.Errorf("decrypt file: %w", err)
	}
	if len(payload) < 2 {
		return ClearFile{}, fmt.Errorf("%w: truncated payload", ErrMalformedEnvelope)
	}

	nameLen := int(binary.BigEndian.Uint16(payload))
	if len(payload) < 2+nameLen {
		return ClearFile{}, fmt.Errorf("%w: truncated filename", ErrMalformedEnvelope)
	}

	return ClearFile{
		Filename: string(payload[2 : 2+nameLen]),
		Data:     payload[2+nameLen:],
	}, nil
}

func parseMessageEnvelope(text string) (sid string, blob []byte, err error) {
	sid, encoded, found := strings.Cut(text, ":")
	if !found || sid == "" || encoded == "" {
		return "", nil, fmt.Errorf("%w: missing session prefix", ErrMalformedEnvelope)
	}

	blob, err = base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return sid, blob, nil
}

func parseFileEnvelope(data []byte) (sid string, sealed []byte, err error) {
	header := len(fileMagic) + 1 + 2
	if len(data) < header || !strings.HasPrefix(string(data), string(fileMagic)) {
		return "", nil, fmt.Errorf("%w: bad file magic", ErrMalformedEnvelope)
	}
	if data[len(fileMagic)] != fileFormatVersion {
		return "", nil, fmt.Errorf("%w: unsupported file format version %d", ErrMalformedEnvelope, data[len(fileMagic)])
	}

	sidLen := int(binary.BigEndian.Uint16(data[len(fileMagic)+1:]))
	if sidLen == 0 || len(data) < header+sidLen {
		return "", nil, fmt.Errorf("%w: truncated session id", ErrMalformedEnvelope)
	}

	return string(data[header : header+sidLen]), data[header+sidLen:], nil
}
