package message

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/w3f-grants-archive/nolik-cli/cryptobox"
	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/party"
)

// The functions below implement the "canonical form" §6 calls for: a
// fixed field order, no maps, counts and variable-length byte strings
// prefixed with a big-endian uint32 (fixed-size nonces, and the keys and
// file digests in the C6 input, are written bare). This is the wire
// format encrypted inside a
// Session or a Message, and the input format hashed by C6 — it is
// distinct from (and simpler than) the envelope's own JSON canonical
// form in envelope.go, which is what gets handed to the store.

func putBytes(buf *bytes.Buffer, b []byte) {
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(b)))
	buf.Write(length[:])
	buf.Write(b)
}

func putString(buf *bytes.Buffer, s string) {
	putBytes(buf, []byte(s))
}

func getBytes(r *bytes.Reader) ([]byte, error) {
	var length [4]byte
	if _, err := io.ReadFull(r, length[:]); err != nil {
		return nil, fmt.Errorf("read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(length[:])
	out := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, out); err != nil {
			return nil, fmt.Errorf("read %d bytes: %w", n, err)
		}
	}
	return out, nil
}

func getString(r *bytes.Reader) (string, error) {
	b, err := getBytes(r)
	return string(b), err
}

// serializeGroup encodes a party.Group as sender-first public keys.
func serializeGroup(buf *bytes.Buffer, g party.Group) {
	all := g.All()
	binary.Write(buf, binary.BigEndian, uint32(len(all)))
	for _, p := range all {
		putBytes(buf, p.PublicKey[:])
	}
}

func deserializeGroup(r *bytes.Reader) (party.Group, error) {
	var count uint32
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return party.Group{}, fmt.Errorf("read group size: %w", err)
	}
	if count < 2 {
		return party.Group{}, errs.Crypto(errs.CodeDecryptSession, "decoded group has fewer than two parties", nil)
	}
	all := make([]party.Party, count)
	for i := range all {
		raw, err := getBytes(r)
		if err != nil || len(raw) != cryptobox.KeySize {
			return party.Group{}, errs.Crypto(errs.CodeDecryptSession, "decoded group entry is malformed", err)
		}
		var pub cryptobox.PublicKey
		copy(pub[:], raw)
		all[i] = party.Party{PublicKey: pub}
	}
	return party.Group{Sender: all[0], Recipients: all[1:]}, nil
}

// serializePlaintextMessage encodes entries and files in input order.
func serializePlaintextMessage(buf *bytes.Buffer, m PlaintextMessage) {
	binary.Write(buf, binary.BigEndian, uint32(len(m.Entries)))
	for _, e := range m.Entries {
		putString(buf, e.Key)
		putString(buf, e.Value)
	}
	binary.Write(buf, binary.BigEndian, uint32(len(m.Files)))
	for _, f := range m.Files {
		putString(buf, f.Name)
		putBytes(buf, f.Binary)
	}
}

func deserializePlaintextMessage(r *bytes.Reader) (PlaintextMessage, error) {
	var entryCount uint32
	if err := binary.Read(r, binary.BigEndian, &entryCount); err != nil {
		return PlaintextMessage{}, fmt.Errorf("read entry count: %w", err)
	}
	entries := make([]Entry, entryCount)
	for i := range entries {
		k, err := getString(r)
		if err != nil {
			return PlaintextMessage{}, fmt.Errorf("read entry key: %w", err)
		}
		v, err := getString(r)
		if err != nil {
			return PlaintextMessage{}, fmt.Errorf("read entry value: %w", err)
		}
		entries[i] = Entry{Key: k, Value: v}
	}

	var fileCount uint32
	if err := binary.Read(r, binary.BigEndian, &fileCount); err != nil {
		return PlaintextMessage{}, fmt.Errorf("read file count: %w", err)
	}
	files := make([]Attachment, fileCount)
	for i := range files {
		name, err := getString(r)
		if err != nil {
			return PlaintextMessage{}, fmt.Errorf("read file name: %w", err)
		}
		data, err := getBytes(r)
		if err != nil {
			return PlaintextMessage{}, fmt.Errorf("read file contents: %w", err)
		}
		files[i] = Attachment{Name: name, Binary: data}
	}

	return PlaintextMessage{Entries: entries, Files: files}, nil
}
