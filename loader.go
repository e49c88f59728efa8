package savings

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadLedgerFile opens and decodes the ledger file at 'path'.
//
// A missing file is reported with an error wrapping fs.ErrNotExist.
func LoadLedgerFile(path string) (*Ledger, error) {
	ledger := NewLedger()
	if err := ledger.LoadFile(path); err != nil {
		return nil, err
	}
	return ledger, nil
}

// LoadFile appends every account found in the ledger file at 'path'.
func (l *Ledger) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	if err := l.Load(f); err != nil {
		return fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return nil
}

// ReplaceFile replaces the content of the ledger with the accounts found in
// the ledger file at 'path'. The ledger is left untouched on error.
func (l *Ledger) ReplaceFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	if err := l.Replace(f); err != nil {
		return fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return nil
}

// SaveLedgerFile writes the ledger to 'path', overwriting any previous content.
//
// The file is written in place: an interrupted write can leave it truncated.
func SaveLedgerFile(path string, ledger *Ledger) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}

	if err := EncodeLedger(file, ledger); err != nil {
		file.Close()
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing ledger file %q: %w", path, err)
	}
	return nil
}
