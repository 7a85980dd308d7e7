package typeid

import (
	"strings"
	"testing"
)

func TestNewAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		prefix string
	}{
		{"session", NewSessionID(), PrefixSession},
		{"snapshot", NewSnapshotID(), PrefixSnapshot},
		{"export", NewExportID(), PrefixExport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasPrefix(tt.id, tt.prefix+"_") {
				t.Errorf("id %q lacks prefix %q", tt.id, tt.prefix)
			}
			if err := Validate(tt.id, tt.prefix); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	if err := Validate(NewSessionID(), PrefixSnapshot); err == nil {
		t.Error("wrong prefix accepted")
	}
	if err := Validate("not an id", PrefixSession); err == nil {
		t.Error("garbage accepted")
	}
}
