package moderation

// Category is one of the eight known listing categories. Ids are stable and
// start at zero, so category presence must never be inferred from a non-zero
// id.
//
// Category 是八个已知广告类目之一。id 稳定且从零开始，
// 因此绝不能用 id 非零来推断类目是否被选择。
type Category struct {
	ID   int    `json:"categoryId"`
	Name string `json:"category"`
}

var categories = []Category{
	{ID: 0, Name: "Электроника"},
	{ID: 1, Name: "Недвижимость"},
	{ID: 2, Name: "Транспорт"},
	{ID: 3, Name: "Работа"},
	{ID: 4, Name: "Услуги"},
	{ID: 5, Name: "Животные"},
	{ID: 6, Name: "Мода"},
	{ID: 7, Name: "Детское"},
}

// Categories returns the fixed category set in display order.
//
// Categories 按展示顺序返回固定的类目集合。
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks a category up by id.
//
// CategoryByID 根据 id 查找类目。
//
// Returns:
//   - Category: The category, zero value when unknown
//   - bool: True when the id is one of the known categories
func CategoryByID(id int) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByName looks a category up by display name.
//
// CategoryByName 根据展示名称查找类目。
func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
