package catalog

import "github.com/stevenguyen-wq/babyboss.tarot/internal/models"

// Cards is the production card set. Two winner cards carry the rare
// class; the manifest cards make up the common pool.
var Cards = []models.CatalogEntry{
	{
		ID:       "winner-the-sun",
		Name:     "The Sun",
		Title:    "Vị Hạnh Phúc",
		ImageURL: "/assets/cards/the-sun.jpg",
		Class:    models.ClassPrimaryRare,
		Flavor:   "Mango Passion Sorbetto",
		Message:  "Mặt Trời chiếu rọi! Năm 2026 của bạn rực rỡ như nắng hè.",
		Advice:   "Chúc mừng! Bạn nhận được 1 ly gelato miễn phí tại Baby Boss. Đưa màn hình này cho nhân viên nhé.",
	},
	{
		ID:       "winner-wheel-of-fortune",
		Name:     "Wheel of Fortune",
		Title:    "Vị May Mắn",
		ImageURL: "/assets/cards/wheel-of-fortune.jpg",
		Class:    models.ClassPrimaryRare,
		Flavor:   "Pistachio Siciliano",
		Message:  "Bánh xe vận mệnh đã quay về phía bạn. Vận may lớn đang chờ!",
		Advice:   "Chúc mừng! Bạn nhận được voucher giảm 50% cho lần ghé Baby Boss tiếp theo.",
	},
	{
		ID:       "manifest-the-star",
		Name:     "The Star",
		Title:    "Vị Hy Vọng",
		ImageURL: "/assets/cards/the-star.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Vanilla Madagascar",
		Message:  "Ngôi sao dẫn lối: điều bạn mong mỏi bấy lâu sẽ dần thành hình trong 2026.",
		Advice:   "Kiên nhẫn một chút nữa thôi. Một ly vanilla dịu nhẹ sẽ giúp bạn giữ vững niềm tin.",
	},
	{
		ID:       "manifest-the-lovers",
		Name:     "The Lovers",
		Title:    "Vị Ngọt Ngào",
		ImageURL: "/assets/cards/the-lovers.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Strawberry Cheesecake",
		Message:  "Tình duyên 2026 ngọt như dâu chín. Một mối quan hệ quan trọng sẽ nở hoa.",
		Advice:   "Mở lòng và chủ động hơn. Rủ người ấy đi ăn gelato là một khởi đầu không tồi.",
	},
	{
		ID:       "manifest-the-empress",
		Name:     "The Empress",
		Title:    "Vị Sung Túc",
		ImageURL: "/assets/cards/the-empress.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Chocolate Fondente",
		Message:  "Nữ Hoàng báo hiệu một năm đủ đầy, sự nghiệp và gia đạo cùng thăng hoa.",
		Advice:   "Đừng quên tự thưởng cho bản thân. Bạn xứng đáng với những điều đậm đà nhất.",
	},
	{
		ID:       "manifest-the-magician",
		Name:     "The Magician",
		Title:    "Vị Sáng Tạo",
		ImageURL: "/assets/cards/the-magician.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Salted Caramel",
		Message:  "Bạn nắm trong tay mọi nguyên liệu để biến 2026 thành một tuyệt tác.",
		Advice:   "Bắt tay vào dự án bạn đang ấp ủ. Mặn ngọt hòa quyện mới ra vị đời.",
	},
	{
		ID:       "manifest-the-emperor",
		Name:     "The Emperor",
		Title:    "Vị Vững Vàng",
		ImageURL: "/assets/cards/the-emperor.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Hazelnut Piemonte",
		Message:  "Năm của kỷ luật và nền móng. Những gì bạn xây trong 2026 sẽ đứng vững lâu dài.",
		Advice:   "Lập kế hoạch rõ ràng và giữ nhịp đều đặn, như tầng hạt dẻ bùi chắc trong ly kem.",
	},
	{
		ID:       "manifest-the-moon",
		Name:     "The Moon",
		Title:    "Vị Bí Ẩn",
		ImageURL: "/assets/cards/the-moon.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Blueberry Yogurt",
		Message:  "Trực giác của bạn sẽ rất nhạy trong 2026. Có những cơ hội chỉ bạn nhìn thấy.",
		Advice:   "Tin vào cảm nhận đầu tiên, nhưng kiểm chứng trước khi quyết định lớn.",
	},
	{
		ID:       "manifest-strength",
		Name:     "Strength",
		Title:    "Vị Bản Lĩnh",
		ImageURL: "/assets/cards/strength.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Dark Chocolate Chili",
		Message:  "2026 thử thách bạn, và bạn sẽ vượt qua bằng sự bền bỉ ít ai ngờ tới.",
		Advice:   "Mềm mỏng bên ngoài, kiên định bên trong. Cay một chút rồi mới thấy ngọt.",
	},
	{
		ID:       "manifest-temperance",
		Name:     "Temperance",
		Title:    "Vị Cân Bằng",
		ImageURL: "/assets/cards/temperance.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Matcha Latte",
		Message:  "Chìa khóa 2026 của bạn là sự điều độ: công việc, sức khỏe, và cả những buổi hẹn.",
		Advice:   "Chậm lại để đi xa hơn. Một ly matcha mỗi tuần là đủ chill.",
	},
	{
		ID:       "manifest-the-world",
		Name:     "The World",
		Title:    "Vị Viên Mãn",
		ImageURL: "/assets/cards/the-world.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Tiramisu Classico",
		Message:  "Một chu kỳ khép lại thật đẹp. 2026 là năm bạn gặt hái thành quả xứng đáng.",
		Advice:   "Hoàn tất những việc còn dang dở trước khi mở chương mới.",
	},
	{
		ID:       "manifest-the-fool",
		Name:     "The Fool",
		Title:    "Vị Khởi Đầu",
		ImageURL: "/assets/cards/the-fool.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Coconut Lime Sorbetto",
		Message:  "2026 mở ra một hành trình hoàn toàn mới. Cứ bước đi, đường sẽ hiện ra.",
		Advice:   "Đừng sợ thử vị mới. Điều tuyệt nhất năm nay nằm ngoài vùng an toàn của bạn.",
	},
	{
		ID:       "manifest-the-high-priestess",
		Name:     "The High Priestess",
		Title:    "Vị Thấu Hiểu",
		ImageURL: "/assets/cards/the-high-priestess.jpg",
		Class:    models.ClassCommon,
		Flavor:   "Black Sesame",
		Message:  "Câu trả lời bạn tìm kiếm đã ở trong bạn từ lâu. 2026 là lúc lắng nghe chính mình.",
		Advice:   "Dành thời gian ở một mình nhiều hơn, nhật ký và một ly mè đen là đủ.",
	},
}
