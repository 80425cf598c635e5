package analysis

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/sirupsen/logrus"
)

// ProseBackend uses prose's sentence segmenter and named-entity tagger.
type ProseBackend struct {
	logger *logrus.Logger
}

func NewProseBackend(logger *logrus.Logger) *ProseBackend {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &ProseBackend{logger: logger}
}

func (b *ProseBackend) Name() string {
	return BackendProse
}

func (b *ProseBackend) Sentences(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		b.logger.WithError(err).Error("Failed to segment sentences")
		return []string{}
	}

	sentences := make([]string, 0)
	for _, sent := range doc.Sentences() {
		if s := strings.TrimSpace(sent.Text); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func (b *ProseBackend) Persons(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		b.logger.WithError(err).Error("Failed to extract named entities")
		return []string{}
	}

	persons := make([]string, 0)
	for _, ent := range doc.Entities() {
		if ent.Label == "PERSON" {
			persons = append(persons, strings.TrimSpace(ent.Text))
		}
	}
	return persons
}
