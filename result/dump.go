package result

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/alara/nuclide"
)

// ErrCorruptRecord indicates a dump record whose layout does not match its
// declared counts.
var ErrCorruptRecord = errors.New("result: corrupt dump record")

// Entry is one component's values inside a dump record.
type Entry struct {
	ComponentID int32
	Values      []float64
}

// Record is one target's persisted results: one entry per mixture component
// containing the target.
//
// On-disk layout, little-endian:
//
//	target_kza : i32
//	n_entries  : i32
//	n_entries × ( component_id : i32, n_values : i32, value : f64 × n_values )
type Record struct {
	Target  nuclide.KZA
	Entries []Entry
}

// WriteRecord appends one record to w.
func WriteRecord(w io.Writer, rec Record) error {
	if err := binary.Write(w, binary.LittleEndian, int32(rec.Target)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(rec.Entries))); err != nil {
		return err
	}
	for _, e := range rec.Entries {
		if err := binary.Write(w, binary.LittleEndian, e.ComponentID); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(len(e.Values))); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.Values); err != nil {
			return err
		}
	}
	return nil
}

// ReadRecord reads the next record from r. A clean end of stream returns
// io.EOF; a truncated or nonsensical record returns ErrCorruptRecord with
// the offending target.
func ReadRecord(r io.Reader) (Record, error) {
	var target int32
	if err := binary.Read(r, binary.LittleEndian, &target); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Record{}, corrupt(target, err)
		}
		return Record{}, err
	}

	var nEntries int32
	if err := binary.Read(r, binary.LittleEndian, &nEntries); err != nil {
		return Record{}, corrupt(target, err)
	}
	if nEntries < 0 {
		return Record{}, corrupt(target, fmt.Errorf("%d entries", nEntries))
	}

	rec := Record{Target: nuclide.KZA(target)}
	for i := int32(0); i < nEntries; i++ {
		var e Entry
		if err := binary.Read(r, binary.LittleEndian, &e.ComponentID); err != nil {
			return Record{}, corrupt(target, err)
		}
		var nVals int32
		if err := binary.Read(r, binary.LittleEndian, &nVals); err != nil {
			return Record{}, corrupt(target, err)
		}
		if nVals < 0 {
			return Record{}, corrupt(target, fmt.Errorf("%d values", nVals))
		}
		e.Values = make([]float64, nVals)
		if err := binary.Read(r, binary.LittleEndian, e.Values); err != nil {
			return Record{}, corrupt(target, err)
		}
		rec.Entries = append(rec.Entries, e)
	}
	return rec, nil
}

// WriteDump writes all records in order.
func WriteDump(w io.Writer, recs []Record) error {
	for _, rec := range recs {
		if err := WriteRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// ReadDump reads records until end of stream.
func ReadDump(r io.Reader) ([]Record, error) {
	var recs []Record
	for {
		rec, err := ReadRecord(r)
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
}

func corrupt(target int32, cause error) error {
	return fmt.Errorf("target %d: %v: %w", target, cause, ErrCorruptRecord)
}
