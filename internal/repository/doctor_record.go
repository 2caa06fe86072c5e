package repository

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

// doctorRecord is the wire shape of one directory entry. The endpoint has been seen
// both in camelCase with flat specialty lists and in snake_case with nested ones.
// Every field tolerates a value of the wrong type, which decodes as absent.
type doctorRecord struct {
	ID            json.RawMessage `json:"id"`
	Name          looseString     `json:"name"`
	Speciality    looseStrings    `json:"speciality"`
	Specialities  looseNames      `json:"specialities"`
	Experience    looseNumber     `json:"experience"`
	Fee           looseNumber     `json:"fee"`
	Fees          looseNumber     `json:"fees"`
	VideoConsult  looseBool       `json:"videoConsult"`
	VideoConsult2 looseBool       `json:"video_consult"`
	InClinic      looseBool       `json:"inClinic"`
	InClinic2     looseBool       `json:"in_clinic"`
}

type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err == nil {
		*s = looseString(v)
	}
	return nil
}

// looseStrings keeps the string items of a JSON array. Any other value is nil.
type looseStrings []string

func (l *looseStrings) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var v string
		if err := json.Unmarshal(item, &v); err == nil && v != "" {
			out = append(out, v)
		}
	}
	*l = out
	return nil
}

// looseNames keeps the names of a JSON array of {"name": ...} objects.
type looseNames []string

func (l *looseNames) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var v struct {
			Name looseString `json:"name"`
		}
		if err := json.Unmarshal(item, &v); err == nil && v.Name != "" {
			out = append(out, string(v.Name))
		}
	}
	*l = out
	return nil
}

type looseBool struct {
	value bool
	set   bool
}

func (b *looseBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		b.value, b.set = v, true
	}
	return nil
}

// looseNumber accepts a JSON number or a string containing one ("₹ 500", "13 Years").
// Anything else decodes to zero.
type looseNumber struct {
	value float64
	set   bool
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		match := numberPattern.FindString(strings.ReplaceAll(s, ",", ""))
		if match == "" {
			return nil
		}
		v, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return nil
		}
		n.value, n.set = v, true
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	n.value, n.set = v, true
	return nil
}

func (r doctorRecord) toEntity() entity.Doctor {
	fee := r.Fee
	if !fee.set {
		fee = r.Fees
	}

	return entity.Doctor{
		ID:           rawID(r.ID),
		Name:         string(r.Name),
		Speciality:   r.specialities(),
		Experience:   r.Experience.value,
		Fee:          fee.value,
		VideoConsult: firstBool(r.VideoConsult, r.VideoConsult2),
		InClinic:     firstBool(r.InClinic, r.InClinic2),
	}
}

func (r doctorRecord) specialities() []string {
	if r.Speciality != nil {
		return []string(r.Speciality)
	}
	return []string(r.Specialities)
}

func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func firstBool(values ...looseBool) bool {
	for _, v := range values {
		if v.set {
			return v.value
		}
	}
	return false
}

// decodeDoctors decodes the body one record at a time. Only a body that is not a
// JSON array is an error; entries that are not objects are skipped.
func decodeDoctors(data []byte) ([]entity.Doctor, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	doctors := make([]entity.Doctor, 0, len(raws))
	for _, raw := range raws {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		var r doctorRecord
		if err := json.Unmarshal(raw, &r); err != nil {
			continue
		}
		doctors = append(doctors, r.toEntity())
	}
	return doctors, nil
}
