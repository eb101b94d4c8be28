// review/schema.go
package review

import "google.golang.org/genai"

func score(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeInteger,
		Minimum:     genai.Ptr(0.0),
		Maximum:     genai.Ptr(100.0),
		Description: description,
	}
}

func text(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func list(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeArray,
		Items:       &genai.Schema{Type: genai.TypeString},
		Description: description,
	}
}

func suggestion(part string) *genai.Schema {
	return text("Gợi ý chi tiết để cải thiện " + part + " (chỉ tạo nếu điểm < 80)")
}

// cvReviewSchema is the response shape the model must follow.
var cvReviewSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"phanTinhDayDu": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"thongTinCaNhan": score("Điểm phần Thông tin cá nhân (0-100)"),
				"mucTieuViTri":   score("Điểm phần Mục tiêu / vị trí hướng đến (0-100)"),
				"kinhNghiemDuAn": score("Điểm phần Kinh nghiệm làm việc / dự án (0-100)"),
				"kienThucKyNang": score("Điểm phần Kiến thức & kỹ năng (0-100)"),
				"hocVanChungChi": score("Điểm phần Học vấn & chứng chỉ (0-100)"),
				"nhanXet":        text("Nhận xét về tính đầy đủ"),
				"goiYChinhSua": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"thongTinCaNhan": suggestion("phần Thông tin cá nhân"),
						"mucTieuViTri":   suggestion("phần Mục tiêu/Vị trí"),
						"kinhNghiemDuAn": suggestion("phần Kinh nghiệm/Dự án"),
						"kienThucKyNang": suggestion("phần Kiến thức & Kỹ năng"),
						"hocVanChungChi": suggestion("phần Học vấn & Chứng chỉ"),
					},
					Description: "Gợi ý chỉnh sửa cho từng phần trong tính đầy đủ (chỉ bao gồm các phần có điểm < 80)",
				},
			},
			Required: []string{"thongTinCaNhan", "mucTieuViTri", "kinhNghiemDuAn", "kienThucKyNang", "hocVanChungChi"},
		},
		"phanTrinhBay": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"gonGang":      score("Điểm tính gọn gàng (0-100)"),
				"chuyenNghiep": score("Điểm tính chuyên nghiệp (0-100)"),
				"nhanXet":      text("Nhận xét về trình bày"),
				"goiYChinhSua": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"gonGang":      suggestion("tính gọn gàng"),
						"chuyenNghiep": suggestion("tính chuyên nghiệp"),
					},
					Description: "Gợi ý chỉnh sửa cho từng phần trong trình bày (chỉ bao gồm các phần có điểm < 80)",
				},
			},
			Required: []string{"gonGang", "chuyenNghiep"},
		},
		"phanNoiDung": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"thongTinCaNhan":        text("Nhận xét chi tiết về phần thông tin cá nhân"),
				"diemThongTinCaNhan":    score("Điểm phần thông tin cá nhân (0-100)"),
				"kinhNghiemLamViec":     text("Nhận xét chi tiết về kinh nghiệm làm việc / dự án"),
				"diemKinhNghiemLamViec": score("Điểm phần kinh nghiệm làm việc (0-100)"),
				"kyNangVaKienThuc":      text("Nhận xét chi tiết về kỹ năng và kiến thức"),
				"diemKyNangVaKienThuc":  score("Điểm phần kỹ năng và kiến thức (0-100)"),
				"hocVan":                text("Nhận xét chi tiết về học vấn và chứng chỉ"),
				"diemHocVan":            score("Điểm phần học vấn (0-100)"),
				"goiYChinhSua": {
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"thongTinCaNhan":    suggestion("nội dung Thông tin cá nhân"),
						"kinhNghiemLamViec": suggestion("nội dung Kinh nghiệm làm việc"),
						"kyNangVaKienThuc":  suggestion("nội dung Kỹ năng & Kiến thức"),
						"hocVan":            suggestion("nội dung Học vấn"),
					},
					Description: "Gợi ý chỉnh sửa cho từng phần nội dung (chỉ bao gồm các phần có điểm < 80)",
				},
			},
			Required: []string{"diemThongTinCaNhan", "diemKinhNghiemLamViec", "diemKyNangVaKienThuc", "diemHocVan"},
		},
		"nhanXetTongQuat": text("Nhận xét tổng quan về CV"),
		"goiYHanhDong": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"uuTienCapNhat": list("Danh sách hành động ưu tiên (theo thứ tự) để cải thiện CV"),
				"goiYKhac":      list("Các gợi ý khác"),
				"viDu":          list("Ví dụ cụ thể từ CV"),
			},
			Required: []string{"uuTienCapNhat"},
		},
		"diemManh": list("Các điểm mạnh nổi bật trong CV"),
		"diemYeu":  list("Các điểm yếu cần tránh"),
		"skills":   list("Danh sách các kỹ năng (skills) được tìm thấy trong CV"),
		"keywords": list("Các từ khóa (keywords) quan trọng liên quan đến công nghệ, công cụ, ngôn ngữ lập trình trong CV"),
	},
	Required: []string{"phanTinhDayDu", "phanTrinhBay", "phanNoiDung", "goiYHanhDong"},
}
