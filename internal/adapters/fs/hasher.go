package fs

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// planKeySalt changes whenever the resolution algorithm changes in a way that
// invalidates cached plans.
const planKeySalt = "cuv-plan-v1"

// Hasher computes cache keys with xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the xxhash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return hasher.Sum64(), nil
}

// ComputePlanKey hashes everything the resolution of doc depends on: the
// rules in order, the effective external modules and the dangling policy.
func (h *Hasher) ComputePlanKey(doc *domain.ScanDocument, externals domain.ExternalModuleSet, allowUnresolved bool) (string, error) {
	if doc == nil {
		return "", zerr.New("cannot compute plan key of nil scan document")
	}

	hasher := xxhash.New()
	writeField(hasher, planKeySalt)

	for i := range doc.Rules {
		h.hashRule(&doc.Rules[i], hasher)
	}
	writeSeparator(hasher)

	for _, name := range domain.DefaultExternalModules().Union(externals).Names() {
		writeField(hasher, name)
	}
	writeSeparator(hasher)

	writeField(hasher, strconv.FormatBool(allowUnresolved))

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashRule hashes the fields of a rule that affect the resolved graph.
func (h *Hasher) hashRule(rule *domain.Rule, hasher *xxhash.Digest) {
	writeField(hasher, rule.PrimaryOutput)

	for _, p := range rule.Provides {
		writeField(hasher, p.LogicalName)
	}
	writeSeparator(hasher)

	for _, r := range rule.Requires {
		writeField(hasher, r.LogicalName)
	}
	writeSeparator(hasher)
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}

// writeSeparator terminates a variable-length section.
func writeSeparator(hasher *xxhash.Digest) {
	_, _ = hasher.Write([]byte{1})
}
