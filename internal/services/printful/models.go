package printful

// registerFileRequest asks Printful to ingest an image from a URL.
type registerFileRequest struct {
	URL string `json:"url"`
}

// File is the server-side record of an ingested image. Only the id is
// used locally; the rest is kept for log output.
type File struct {
	ID       int64  `json:"id"`
	Type     string `json:"type,omitempty"`
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Status   string `json:"status,omitempty"`
}

type registerFileResponse struct {
	Code   int  `json:"code"`
	Result File `json:"result"`
}

// SyncProduct is the product-level metadata of a creation payload.
type SyncProduct struct {
	Name       string `json:"name"`
	IsVisible  bool   `json:"is_visible"`
	ExternalID string `json:"external_id"`
}

// FileRef attaches an already-registered file to a variant. Type is one
// of "front", "back" or "inside_label".
type FileRef struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

// SyncVariant is one sellable configuration of the product being created.
type SyncVariant struct {
	VariantID   int64     `json:"variant_id"`
	RetailPrice string    `json:"retail_price"`
	Files       []FileRef `json:"files"`
}

// CreateProductRequest is the payload for the store/products endpoint.
type CreateProductRequest struct {
	SyncProduct  SyncProduct   `json:"sync_product"`
	SyncVariants []SyncVariant `json:"sync_variants"`
}

// CreateProductResponse is the decoded body of a successful creation call.
type CreateProductResponse struct {
	Code   int `json:"code"`
	Result struct {
		ID         int64  `json:"id"`
		ExternalID string `json:"external_id,omitempty"`
		Name       string `json:"name,omitempty"`
		Synced     int    `json:"synced,omitempty"`
		Variants   int    `json:"variants,omitempty"`
	} `json:"result"`
}
