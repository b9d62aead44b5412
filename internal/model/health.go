package model

// HealthStatus is the backend's GET / body.
type HealthStatus struct {
	Message  string   `json:"message"`
	Features []string `json:"features,omitempty"`
}

type RAGStatus struct {
	Status            string `json:"status"`
	VectorStoreLoaded bool   `json:"vector_store_loaded"`
	RetrieverReady    bool   `json:"retriever_ready"`
	PDFSource         string `json:"pdf_source,omitempty"`
	EmbeddingsModel   string `json:"embeddings_model,omitempty"`
	VectorStoreType   string `json:"vector_store_type,omitempty"`
	Error             string `json:"error,omitempty"`
}
