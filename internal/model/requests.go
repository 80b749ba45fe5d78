package model

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type OverrideBatchRequest struct {
	PostingNumbers []string `json:"posting_numbers"`
	Value          bool     `json:"value"`
}

type LabelRequest struct {
	PostingNumbers []string `json:"posting_numbers"`
}

type ImageImportRequest struct {
	Images map[string]string `json:"images"`
}
