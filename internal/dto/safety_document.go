package dto

import "github.com/PPKK-Project/Tlan/internal/core/domain"

// SafetyDocument is the advisory provider's nested response envelope:
// response → body → items → item[]. Every level is a pointer because the
// provider omits inner objects on error responses; navigation must treat
// each level as optionally absent.
type SafetyDocument struct {
	Response *SafetyResponse `json:"response"`
}

type SafetyResponse struct {
	Header *SafetyHeader `json:"header"`
	Body   *SafetyBody   `json:"body"`
}

// SafetyHeader carries the provider's own result code. "00" is success;
// anything else is a provider-side failure to be logged with the message.
type SafetyHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

type SafetyBody struct {
	Items *SafetyItems `json:"items"`
}

type SafetyItems struct {
	Item []domain.SafetyEntry `json:"item"`
}

// Entries walks the nested document and returns the advisory list, or
// (nil, false) when any level of the chain is missing.
func (d *SafetyDocument) Entries() ([]domain.SafetyEntry, bool) {
	if d == nil || d.Response == nil || d.Response.Body == nil || d.Response.Body.Items == nil || d.Response.Body.Items.Item == nil {
		return nil, false
	}
	return d.Response.Body.Items.Item, true
}

// ResultStatus returns the provider's result code and message when the
// header is present, or placeholders describing the missing structure.
func (d *SafetyDocument) ResultStatus() (code, msg string) {
	if d == nil || d.Response == nil || d.Response.Header == nil {
		return "UNKNOWN", "response missing or body/items/item structure mismatch"
	}
	return d.Response.Header.ResultCode, d.Response.Header.ResultMsg
}
