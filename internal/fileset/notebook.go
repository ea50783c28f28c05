package fileset

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// notebookMetadata is the subset of a Jupyter notebook's JSON structure
// needed to detect jupytext pairing. Everything else is ignored.
type notebookMetadata struct {
	Metadata map[string]json.RawMessage `json:"metadata"`
}

// isJupytextPaired reports whether a .py file is the generated half of a
// jupytext-paired notebook and must therefore be left alone — formatting
// it would be undone on the next notebook sync.
//
// A file is considered paired when all of the following hold:
//   - a sibling .ipynb with the same base name exists
//   - the notebook's metadata declares jupytext management
//   - the .py file itself carries a "jupytext:" header marker
func isJupytextPaired(pyPath string) bool {
	base := strings.TrimSuffix(pyPath, ".py")
	notebookPath := base + ".ipynb"

	notebookBytes, err := os.ReadFile(notebookPath)
	if err != nil {
		return false
	}
	if !notebookMentionsJupytext(notebookBytes) {
		return false
	}

	pyBytes, err := os.ReadFile(pyPath)
	if err != nil {
		return false
	}
	return bytes.Contains(pyBytes, []byte("jupytext:"))
}

// notebookMentionsJupytext inspects notebook JSON for a jupytext metadata
// section. Notebook files written by some tooling carry comments or
// trailing commas, so the content is run through jsonc.ToJSON before
// parsing. If the JSON cannot be parsed at all, a raw byte search is used
// as a fallback, which errs on the side of skipping the paired file.
func notebookMentionsJupytext(content []byte) bool {
	var nb notebookMetadata
	if err := json.Unmarshal(jsonc.ToJSON(content), &nb); err != nil {
		return bytes.Contains(content, []byte("jupytext"))
	}
	_, ok := nb.Metadata["jupytext"]
	return ok
}
