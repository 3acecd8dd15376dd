package fixture

import (
	"fmt"
	"os"

	"github.com/brandguard/brandguard/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLLoader implements domain.FixtureLoader for golden-tests.yaml files.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

type document struct {
	Metadata  yaml.Node `yaml:"metadata"`
	TestCases yaml.Node `yaml:"test_cases"`
}

// Load reads and parses the corpus at path. A missing file is returned as a
// wrapped os.ErrNotExist; a document without a test_cases list is a
// *domain.FixtureFormatError. Individual cases are not validated here.
func (l *YAMLLoader) Load(path string) (*domain.Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading golden tests: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes corpus bytes. path is only used for error messages.
func Parse(path string, data []byte) (*domain.Corpus, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &domain.FixtureFormatError{Path: path, Reason: "unparseable YAML", Err: err}
	}
	if doc.TestCases.Kind != yaml.SequenceNode {
		return nil, &domain.FixtureFormatError{Path: path, Reason: "missing test_cases array"}
	}

	corpus := &domain.Corpus{
		Path:  path,
		Cases: make([]domain.FixtureCase, 0, len(doc.TestCases.Content)),
	}

	// Metadata is advisory; an unreadable block is treated as absent.
	if doc.Metadata.Kind == yaml.MappingNode {
		var md domain.Metadata
		if err := doc.Metadata.Decode(&md); err == nil {
			corpus.Metadata = &md
		}
	}

	for i, item := range doc.TestCases.Content {
		corpus.Cases = append(corpus.Cases, decodeCase(i, item))
	}
	return corpus, nil
}

// decodeCase keeps both views of a record: the raw map for structural checks
// and the typed case for evaluation. Decode failures are attached to the case
// rather than failing the load; yaml.v3 still fills every field it could
// decode.
func decodeCase(index int, node *yaml.Node) domain.FixtureCase {
	raw := map[string]any{}
	var rawErr error
	if node.Kind != yaml.MappingNode {
		rawErr = fmt.Errorf("test case %d (line %d) is not a mapping", index, node.Line)
	} else if err := node.Decode(&raw); err != nil {
		rawErr = fmt.Errorf("reading test case %d (line %d): %w", index, node.Line, err)
	}

	var fc domain.FixtureCase
	if err := node.Decode(&fc); err != nil {
		fc.DecodeErr = fmt.Errorf("decoding test case %d (line %d): %w", index, node.Line, err)
	}
	fc.Index = index
	fc.Raw = raw
	fc.RawErr = rawErr
	return fc
}

// LoadRequest reads a single {asset, context} document for one-off validation.
func (l *YAMLLoader) LoadRequest(path string) (*domain.ValidationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request: %w", err)
	}
	var req domain.ValidationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing request: %w", err)
	}
	return &req, nil
}
