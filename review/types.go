// review/types.go
package review

import "encoding/json"

////////////////////////////////////////////////////////////////////////
// CV Review Result
////////////////////////////////////////////////////////////////////////

// The JSON keys are the Vietnamese names the review page already reads, and
// all scores are integers from 0 to 100. Suggestions are only produced for
// parts scoring below 80.

// CVReview is the structured result of one CV review.
type CVReview struct {
	Completeness   Completeness `json:"phanTinhDayDu"`
	Presentation   Presentation `json:"phanTrinhBay"`
	Content        Content      `json:"phanNoiDung"`
	OverallComment string       `json:"nhanXetTongQuat,omitempty"`
	ActionPlan     ActionPlan   `json:"goiYHanhDong"`
	Strengths      []string     `json:"diemManh,omitempty"`
	Weaknesses     []string     `json:"diemYeu,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Keywords       []string     `json:"keywords,omitempty"`
}

// Completeness scores whether each expected CV part is present.
type Completeness struct {
	PersonalInfo int                      `json:"thongTinCaNhan"`
	Objective    int                      `json:"mucTieuViTri"`
	Experience   int                      `json:"kinhNghiemDuAn"`
	Skills       int                      `json:"kienThucKyNang"`
	Education    int                      `json:"hocVanChungChi"`
	Comment      string                   `json:"nhanXet,omitempty"`
	Suggestions  *CompletenessSuggestions `json:"goiYChinhSua,omitempty"`
}

// CompletenessSuggestions holds per-part fixes for Completeness.
type CompletenessSuggestions struct {
	PersonalInfo string `json:"thongTinCaNhan,omitempty"`
	Objective    string `json:"mucTieuViTri,omitempty"`
	Experience   string `json:"kinhNghiemDuAn,omitempty"`
	Skills       string `json:"kienThucKyNang,omitempty"`
	Education    string `json:"hocVanChungChi,omitempty"`
}

// Presentation scores layout and tone.
type Presentation struct {
	Tidiness        int                      `json:"gonGang"`
	Professionalism int                      `json:"chuyenNghiep"`
	Comment         string                   `json:"nhanXet,omitempty"`
	Suggestions     *PresentationSuggestions `json:"goiYChinhSua,omitempty"`
}

// PresentationSuggestions holds fixes for Presentation.
type PresentationSuggestions struct {
	Tidiness        string `json:"gonGang,omitempty"`
	Professionalism string `json:"chuyenNghiep,omitempty"`
}

// Content comments on and scores what each part actually says.
type Content struct {
	PersonalInfo      string              `json:"thongTinCaNhan,omitempty"`
	PersonalInfoScore int                 `json:"diemThongTinCaNhan"`
	Experience        string              `json:"kinhNghiemLamViec,omitempty"`
	ExperienceScore   int                 `json:"diemKinhNghiemLamViec"`
	Skills            string              `json:"kyNangVaKienThuc,omitempty"`
	SkillsScore       int                 `json:"diemKyNangVaKienThuc"`
	Education         string              `json:"hocVan,omitempty"`
	EducationScore    int                 `json:"diemHocVan"`
	Suggestions       *ContentSuggestions `json:"goiYChinhSua,omitempty"`
}

// ContentSuggestions holds fixes for Content.
type ContentSuggestions struct {
	PersonalInfo string `json:"thongTinCaNhan,omitempty"`
	Experience   string `json:"kinhNghiemLamViec,omitempty"`
	Skills       string `json:"kyNangVaKienThuc,omitempty"`
	Education    string `json:"hocVan,omitempty"`
}

// ActionPlan lists what the candidate should do next.
type ActionPlan struct {
	Priorities []string `json:"uuTienCapNhat"`
	Other      []string `json:"goiYKhac,omitempty"`
	Examples   []string `json:"viDu,omitempty"`
}

////////////////////////////////////////////////////////////////////////
// Fix Suggestions
////////////////////////////////////////////////////////////////////////

// FixSuggestions is the "fix" view of a stored review: the suggestion object
// of each section, or the empty string when a section has none.
type FixSuggestions struct {
	Completeness json.RawMessage `json:"phanTinhDayDu"`
	Presentation json.RawMessage `json:"phanTrinhBay"`
	Content      json.RawMessage `json:"phanNoiDung"`
}
