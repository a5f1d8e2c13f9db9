// Package source reads raw record batches from the shapes the external data
// layer produces: JSONL streams or plain JSON arrays. It also performs the
// file-metadata flattening the transformation core expects: host file
// metadata appears under literal "file.*" keys, merged with the note's own
// properties.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alfredjeanlab/ganttview/internal/model"
)

// fileMetaKeys is the host file metadata carried onto every record.
var fileMetaKeys = []string{"path", "name", "basename", "folder"}

// item is one entry of a record batch on the wire. Entries either separate
// file metadata from note properties, or are already-flat records.
type item struct {
	Type       string         `json:"type,omitempty"`
	File       map[string]any `json:"file,omitempty"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Flatten merges note properties and file metadata into one record. Note
// properties win key collisions, except the file namespace itself, which
// always comes from the host metadata.
func Flatten(file, properties map[string]any) model.RawRecord {
	rec := make(model.RawRecord, len(properties)+len(fileMetaKeys))
	for k, v := range properties {
		rec[k] = v
	}
	for _, k := range fileMetaKeys {
		if v, ok := file[k]; ok {
			rec["file."+k] = v
		}
	}
	return rec
}

// ReadBatch decodes a record batch from r. A leading '[' means a JSON array;
// anything else is treated as JSONL, one entry per line, with blank lines
// and header entries (type "header") skipped.
func ReadBatch(r io.Reader) ([]model.RawRecord, error) {
	br := bufio.NewReader(r)
	first, err := firstByte(br)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	if first == '[' {
		return readArray(br)
	}
	return readLines(br)
}

// ReadFile decodes a record batch from a file on disk.
func ReadFile(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	records, err := ReadBatch(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}

// firstByte peeks past leading whitespace without consuming input.
func firstByte(br *bufio.Reader) (byte, error) {
	for i := 1; ; i++ {
		buf, err := br.Peek(i)
		if err != nil {
			return 0, err
		}
		b := buf[i-1]
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			continue
		}
		return b, nil
	}
}

func readArray(r io.Reader) ([]model.RawRecord, error) {
	var raw []json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode record array: %w", err)
	}
	records := make([]model.RawRecord, 0, len(raw))
	for i, msg := range raw {
		rec, skip, err := decodeItem(msg)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if !skip {
			records = append(records, rec)
		}
	}
	return records, nil
}

func readLines(r io.Reader) ([]model.RawRecord, error) {
	var records []model.RawRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		rec, skip, err := decodeItem(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if !skip {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan records: %w", err)
	}
	return records, nil
}

// decodeItem turns one wire entry into a record. Entries carrying a
// properties object get the file metadata flattened in; header entries are
// skipped; anything else is taken as an already-flat record.
func decodeItem(data []byte) (model.RawRecord, bool, error) {
	var it item
	if err := json.Unmarshal(data, &it); err == nil {
		if it.Type == "header" {
			return nil, true, nil
		}
		if it.Properties != nil || it.File != nil {
			return Flatten(it.File, it.Properties), false, nil
		}
	}
	var rec model.RawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("decode record: %w", err)
	}
	return rec, false, nil
}
