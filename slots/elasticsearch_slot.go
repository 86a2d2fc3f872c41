package slots

import (
	"context"
	"encoding/json"

	"github.com/movio/sharedstore"
	elastic "gopkg.in/olivere/elastic.v5"
)

// DefaultElasticsearchType is the mapping type used for slot documents
const DefaultElasticsearchType = "slot"

type slotDocument struct {
	Content string `json:"content"`
}

// ElasticsearchSlot keeps the slot in a single Elasticsearch document.
type ElasticsearchSlot struct {
	client    *elastic.Client
	context   context.Context
	indexName string
	typeName  string
	id        string
	logger    sharedstore.Logger
}

// NewElasticsearchSlot binds a slot to the document {indexName}/{DefaultElasticsearchType}/{id}.
// The index is created on first write if the cluster allows automatic index creation.
func NewElasticsearchSlot(config *sharedstore.Config, client *elastic.Client, indexName string, id string) *ElasticsearchSlot {
	config = config.WithDefaults()
	return &ElasticsearchSlot{
		client:    client,
		context:   context.Background(),
		indexName: indexName,
		typeName:  DefaultElasticsearchType,
		id:        id,
		logger:    config.Logger,
	}
}

// Read gets the document. A missing document or index reads as "".
func (s *ElasticsearchSlot) Read() (string, error) {
	s.logger.Debugf("ElasticsearchSlot Read: %s/%s/%s", s.indexName, s.typeName, s.id)
	result, err := s.client.Get().
		Index(s.indexName).
		Type(s.typeName).
		Id(s.id).
		Do(s.context)
	if elastic.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if !result.Found || result.Source == nil {
		return "", nil
	}
	var doc slotDocument
	if err := json.Unmarshal(*result.Source, &doc); err != nil {
		return "", err
	}
	return doc.Content, nil
}

// Write indexes the document, refreshing so that the next Read sees it
func (s *ElasticsearchSlot) Write(content string) error {
	s.logger.Debugf("ElasticsearchSlot Write: %s/%s/%s (%d bytes)", s.indexName, s.typeName, s.id, len(content))
	_, err := s.client.Index().
		Index(s.indexName).
		Type(s.typeName).
		Id(s.id).
		BodyJson(slotDocument{Content: content}).
		Refresh("true").
		Do(s.context)
	return err
}

// WithMetrics wraps the slot in a SlotMetrics decorator
func (s *ElasticsearchSlot) WithMetrics(provider sharedstore.MetricsProvider, label string) sharedstore.Slot {
	return sharedstore.NewSlotMetrics(s, provider, label)
}
