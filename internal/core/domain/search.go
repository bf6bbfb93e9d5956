package domain

// DefaultTopK is the per-collection result count requested when the
// caller does not specify one.
const DefaultTopK = 3

// SearchOptions configures a federated search.
type SearchOptions struct {
	// TopK is the number of nearest neighbours requested from each
	// registered collection. The merged result is capped at TopK*2,
	// which intentionally over-fetches relative to the final answer
	// context to give the composer headroom.
	TopK int
}

// EffectiveTopK resolves the requested TopK, falling back to DefaultTopK
// for zero or negative values.
func (o SearchOptions) EffectiveTopK() int {
	if o.TopK <= 0 {
		return DefaultTopK
	}
	return o.TopK
}

// SearchResult is a single federated-search hit, tagged with the
// collection it came from.
type SearchResult struct {
	// Document is the stored chunk text.
	Document string `json:"document"`

	// Distance is the vector distance to the query; lower is more
	// relevant. The metric is defined by the vector store (typically
	// cosine or L2).
	Distance float64 `json:"distance"`

	// Metadata is the chunk adjacency metadata stored at ingestion time.
	Metadata ChunkMetadata `json:"metadata"`

	// Source is the provenance label of the owning collection.
	Source string `json:"source"`

	// Collection is the id of the collection that produced this hit.
	Collection string `json:"collection"`
}
