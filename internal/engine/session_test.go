package engine

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-chat-seal/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, id string) *localSession {
	t.Helper()
	keychain := crypto.NewKeyChainService()

	key, err := keychain.GenerateSessionKey()
	require.NoError(t, err)

	return &localSession{id: id, key: key, keychain: keychain}
}

func TestSession_MessageRoundTrip(t *testing.T) {
	s := newTestSession(t, "sess-1")

	encrypted, err := s.EncryptMessage("привет, bob")
	require.NoError(t, err)
	assert.NotEqual(t, "привет, bob", encrypted)

	clear, err := s.DecryptMessage(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "привет, bob", clear)
}

func TestSession_DecryptMessage_WrongSession(t *testing.T) {
	alice := newTestSession(t, "sess-1")
	other := newTestSession(t, "sess-2")

	encrypted, err := alice.EncryptMessage("hello")
	require.NoError(t, err)

	_, err = other.DecryptMessage(encrypted)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongSession)
}

func TestSession_DecryptMessage_Malformed(t *testing.T) {
	s := newTestSession(t, "sess-1")

	for _, text := range []string{"", "no-separator", ":payload", "sid:", "sess-1:not-base64!!!"} {
		_, err := s.DecryptMessage(text)
		assert.ErrorIs(t, err, ErrMalformedEnvelope, "text=%q", text)
	}
}

func TestSession_EncryptMessage_SessionIDInClear(t *testing.T) {
	s := newTestSession(t, "sess-1")

	encrypted, err := s.EncryptMessage("hello")
	require.NoError(t, err)

	sid, _, err := parseMessageEnvelope(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sid)
}

func TestSession_FileRoundTrip(t *testing.T) {
	s := newTestSession(t, "sess-file")
	data := []byte{0x00, 0x01, 0xFF, 0x42}

	encrypted, err := s.EncryptFile(data, "report.pdf")
	require.NoError(t, err)

	clear, err := s.DecryptFile(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", clear.Filename)
	assert.Equal(t, data, clear.Data)
}

// Двухбайтовый префикс длины не вмещает имя длиннее 65535 байт — без
// проверки оно молча обрезалось бы и конверт разбирался бы неверно.
func TestSession_EncryptFile_FilenameTooLong(t *testing.T) {
	s := newTestSession(t, "sess-file")

	longest := strings.Repeat("a", maxFilenameLen)
	encrypted, err := s.EncryptFile([]byte("data"), longest)
	require.NoError(t, err)

	clear, err := s.DecryptFile(encrypted)
	require.NoError(t, err)
	assert.Equal(t, longest, clear.Filename)
	assert.Equal(t, []byte("data"), clear.Data)

	_, err = s.EncryptFile([]byte("data"), longest+"a")
	assert.ErrorIs(t, err, ErrFilenameTooLong)
}

func TestSession_DecryptFile_WrongSession(t *testing.T) {
	alice := newTestSession(t, "sess-1")
	other := newTestSession(t, "sess-2")

	encrypted, err := alice.EncryptFile([]byte("data"), "a.txt")
	require.NoError(t, err)

	_, err = other.DecryptFile(encrypted)
	assert.ErrorIs(t, err, ErrWrongSession)
}

func TestParseFileEnvelope(t *testing.T) {
	s := newTestSession(t, "sess-file")

	encrypted, err := s.EncryptFile([]byte("data"), "a.txt")
	require.NoError(t, err)

	sid, _, err := parseFileEnvelope(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "sess-file", sid)

	_, _, err = parseFileEnvelope([]byte("not an envelope"))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, _, err = parseFileEnvelope(nil)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	// неподдерживаемая версия формата
	bad := append([]byte{}, encrypted...)
	bad[len(fileMagic)] = 0x7F
	_, _, err = parseFileEnvelope(bad)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}
