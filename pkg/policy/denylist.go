package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// commonPasswords is the built-in denylist, matched against the
// lowercased password verbatim.
var commonPasswords = []string{
	"123456",
	"12345678",
	"123456789",
	"12345",
	"111111",
	"qwerty",
	"asdfgh",
	"zxcvbnm",
	"password",
	"admin",
}

// DenylistFile is the on-disk shape of an extra denylist:
//
//	entries:
//	  - hunter2
//	  - letmein
type DenylistFile struct {
	Entries []string `yaml:"entries"`
}

// LoadDenylist merges extra entries from a YAML file into the evaluator's
// denylist. Built-in entries are never removed. Returns the number of
// entries read from the file.
func (e *Evaluator) LoadDenylist(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read denylist: %w", err)
	}
	var file DenylistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse denylist %s: %w", path, err)
	}
	e.Deny(file.Entries...)
	return len(file.Entries), nil
}
