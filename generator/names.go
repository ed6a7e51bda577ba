package generator

import (
	"fmt"
	"math/rand"
)

// Name pools for synthetic Vietnamese names. Family names are shared;
// middle and first names are split by gender.
var (
	familyNames = []string{
		"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Vũ", "Đỗ", "Bùi", "Đinh", "Ngô",
		"Dương", "Võ", "Phan", "Trương", "Lý", "Cao", "Trịnh", "Mai", "Lâm", "Tôn",
		"Hà", "Quách", "Thôi", "Kiều", "Đàng", "Lưu", "Triệu", "Tô", "Đặng",
		"Đoàn", "Hồ", "Ứng", "Vi", "Kim", "Ong", "Thái", "Yến", "Chu",
	}

	middleNamesMale = []string{
		"Văn", "Hữu", "Quốc", "Minh", "Đình", "Thanh", "Hoàng", "Gia", "Thế", "Trung",
		"Xuân", "Hải", "Nam", "Anh", "Tùng", "Cường", "Duy", "Hùng", "Quân", "Phong",
		"Sơn", "Hào", "Kiệt", "Mạnh", "Phúc", "Lộc", "Thành", "Thiên", "Nhật", "Long",
	}

	middleNamesFemale = []string{
		"Thị", "Ngọc", "Thanh", "Thúy", "Hoài", "Quỳnh", "Lan", "Hương", "Linh",
		"Thu", "Oanh", "Yến", "Anh", "Tuyết", "Diễm", "My", "Lệ", "Kim", "Xuân",
		"Hà", "Giang", "Ngân", "Vy", "Trang", "Phương", "Quyên", "Thảo", "Duyên", "Chi",
	}

	firstNamesMale = []string{
		"An", "Bảo", "Bình", "Chiến", "Chương", "Dũng", "Đại", "Đạt", "Đức", "Giàu",
		"Hào", "Hiếu", "Hoài", "Hùng", "Huy", "Khang", "Khiêm", "Kiên", "Khoa", "Khôi",
		"Linh", "Long", "Luân", "Mạnh", "Nam", "Nghĩa", "Nhân", "Phi", "Phong", "Phúc",
		"Quốc", "Quân", "Quyết", "Sáng", "Sơn", "Tài", "Tâm", "Tấn", "Thái",
		"Thành", "Thiên", "Thiện", "Thắng", "Thịnh", "Tiến", "Toàn", "Trí", "Trung",
		"Trường", "Tú", "Tuấn", "Tùng", "Vinh", "Vũ", "Xuân", "Yến",
	}

	firstNamesFemale = []string{
		"An", "Anh", "Ái", "Băng", "Bi", "Chi", "Chinh", "Dung", "Diễm", "Giang",
		"Gia", "Hà", "Hân", "Hiền", "Hoài", "Hoa", "Hồng", "Huyền", "Hương", "Khánh",
		"Kiều", "Lam", "Lan", "Linh", "Loan", "Lộc", "Lựu", "Ly", "Mai", "Mẫn",
		"My", "Nga", "Nghi", "Ngọc", "Nhi", "Như", "Oanh", "Phong", "Phượng", "Quyên",
		"Quỳnh", "Sao", "Sương", "Thu", "Thảo", "Thủy", "Tiên", "Trang", "Trinh", "Trúc",
		"Tú", "Tuyền", "Tường", "Vy", "Xuân", "Yến", "Ánh", "Bảo", "Cúc",
	}
)

// GenerateName builds a random Vietnamese full name (family + middle + first)
// and returns its title-cased ASCII form along with the drawn gender.
func GenerateName(rng *rand.Rand) (string, bool) {
	isMale := rng.Intn(2) == 0

	family := familyNames[rng.Intn(len(familyNames))]

	var middle, first string
	if isMale {
		middle = middleNamesMale[rng.Intn(len(middleNamesMale))]
		first = firstNamesMale[rng.Intn(len(firstNamesMale))]
	} else {
		middle = middleNamesFemale[rng.Intn(len(middleNamesFemale))]
		first = firstNamesFemale[rng.Intn(len(firstNamesFemale))]
	}

	fullName := fmt.Sprintf("%s %s %s", family, middle, first)
	return TitleCase(RemoveDiacritics(fullName)), isMale
}
