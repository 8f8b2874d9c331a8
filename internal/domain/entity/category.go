package entity

// Category is the stable key of a taxonomy member.
type Category string

// The built-in spending taxonomy, in declaration order.
const (
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryGroceries      Category = "groceries"
	CategoryTransportation Category = "transportation"
	CategoryRestaurants    Category = "restaurants"
	CategoryCoffee         Category = "coffee"
	CategoryFastFood       Category = "fastFood"
	CategoryHealth         Category = "health"
	CategoryFitness        Category = "fitness"
	CategoryBeauty         Category = "beauty"
	CategoryClothing       Category = "clothing"
	CategoryEntertainment  Category = "entertainment"
	CategoryTravel         Category = "travel"
	CategoryShopping       Category = "shopping"
	CategoryHobbies        Category = "hobbies"
	CategorySubscriptions  Category = "subscriptions"
	CategoryEducation      Category = "education"
	CategorySavings        Category = "savings"
	CategoryInvestments    Category = "investments"
	CategoryInsurance      Category = "insurance"
	CategoryTaxes          Category = "taxes"
	CategoryLoans          Category = "loans"
	CategoryChildcare      Category = "childcare"
	CategoryGifts          Category = "gifts"
	CategoryCharity        Category = "charity"
	CategoryOther          Category = "other"
)

// CategoryInfo is presentation metadata for a taxonomy member.
type CategoryInfo struct {
	Key   Category
	Label string
	Icon  string
	Color string
}

// Taxonomy is a closed, ordered set of categories with a fallback member.
// The zero value is not usable; build one with NewTaxonomy.
type Taxonomy struct {
	members  []CategoryInfo
	index    map[Category]int
	fallback Category
}

// NewTaxonomy builds a taxonomy from members in declaration order.
// The fallback is appended when it is not already a member.
func NewTaxonomy(fallback Category, members ...CategoryInfo) *Taxonomy {
	t := &Taxonomy{
		members:  make([]CategoryInfo, 0, len(members)+1),
		index:    make(map[Category]int, len(members)+1),
		fallback: fallback,
	}
	for _, m := range members {
		if _, dup := t.index[m.Key]; dup {
			continue
		}
		t.index[m.Key] = len(t.members)
		t.members = append(t.members, m)
	}
	if _, ok := t.index[fallback]; !ok {
		t.index[fallback] = len(t.members)
		t.members = append(t.members, CategoryInfo{Key: fallback, Label: "Other", Icon: "ellipsis.circle.fill", Color: "#8E8E93"})
	}
	return t
}

// NewTaxonomyFromKeys builds a taxonomy without presentation metadata.
func NewTaxonomyFromKeys(fallback Category, keys ...Category) *Taxonomy {
	members := make([]CategoryInfo, 0, len(keys))
	for _, k := range keys {
		members = append(members, CategoryInfo{Key: k, Label: string(k)})
	}
	return NewTaxonomy(fallback, members...)
}

// Resolve maps a raw key to a member, falling back for unknown keys.
func (t *Taxonomy) Resolve(key string) Category {
	c := Category(key)
	if _, ok := t.index[c]; ok {
		return c
	}
	return t.fallback
}

// Contains reports whether the key names a member.
func (t *Taxonomy) Contains(key string) bool {
	_, ok := t.index[Category(key)]
	return ok
}

// Fallback returns the member unknown keys resolve to.
func (t *Taxonomy) Fallback() Category {
	return t.fallback
}

// Categories returns the member keys in declaration order.
func (t *Taxonomy) Categories() []Category {
	keys := make([]Category, len(t.members))
	for i, m := range t.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the members with their metadata in declaration order.
func (t *Taxonomy) Members() []CategoryInfo {
	out := make([]CategoryInfo, len(t.members))
	copy(out, t.members)
	return out
}

// Info returns the metadata for a category.
func (t *Taxonomy) Info(c Category) (CategoryInfo, bool) {
	i, ok := t.index[c]
	if !ok {
		return CategoryInfo{}, false
	}
	return t.members[i], true
}

// Position returns the declaration index of a category, or -1.
func (t *Taxonomy) Position(c Category) int {
	if i, ok := t.index[c]; ok {
		return i
	}
	return -1
}

// Len returns the number of members.
func (t *Taxonomy) Len() int {
	return len(t.members)
}

var defaultTaxonomy = NewTaxonomy(CategoryOther,
	CategoryInfo{CategoryHousing, "Housing", "house.fill", "#007AFF"},
	CategoryInfo{CategoryUtilities, "Utilities", "bolt.fill", "#4D80E6"},
	CategoryInfo{CategoryGroceries, "Groceries", "cart.fill", "#00B3CC"},
	CategoryInfo{CategoryTransportation, "Transportation", "car.fill", "#6699FF"},
	CategoryInfo{CategoryRestaurants, "Restaurants", "fork.knife", "#34C759"},
	CategoryInfo{CategoryCoffee, "Coffee", "cup.and.saucer.fill", "#4DCC80"},
	CategoryInfo{CategoryFastFood, "Fast Food", "takeoutbag.and.cup.and.straw.fill", "#80E64D"},
	CategoryInfo{CategoryHealth, "Health", "heart.fill", "#FF3B30"},
	CategoryInfo{CategoryFitness, "Fitness", "figure.run", "#E6664D"},
	CategoryInfo{CategoryBeauty, "Beauty", "scissors", "#FF2D55"},
	CategoryInfo{CategoryClothing, "Clothing", "tshirt.fill", "#FF4D80"},
	CategoryInfo{CategoryEntertainment, "Entertainment", "film.fill", "#AF52DE"},
	CategoryInfo{CategoryTravel, "Travel", "airplane", "#B34DCC"},
	CategoryInfo{CategoryShopping, "Shopping", "bag.fill", "#FF9500"},
	CategoryInfo{CategoryHobbies, "Hobbies", "gamecontroller.fill", "#8033CC"},
	CategoryInfo{CategorySubscriptions, "Subscriptions", "play.rectangle.fill", "#9966E6"},
	CategoryInfo{CategoryEducation, "Education", "book.fill", "#E6B31A"},
	CategoryInfo{CategorySavings, "Savings", "banknote.fill", "#CCCC33"},
	CategoryInfo{CategoryInvestments, "Investments", "chart.line.uptrend.xyaxis", "#99CC1A"},
	CategoryInfo{CategoryInsurance, "Insurance", "lock.shield.fill", "#FFCC00"},
	CategoryInfo{CategoryTaxes, "Taxes", "doc.text.fill", "#E6991A"},
	CategoryInfo{CategoryLoans, "Loans", "building.columns.fill", "#CC8033"},
	CategoryInfo{CategoryChildcare, "Childcare", "figure.and.child.holdinghands", "#B380E6"},
	CategoryInfo{CategoryGifts, "Gifts", "gift.fill", "#E680B3"},
	CategoryInfo{CategoryCharity, "Charity", "hand.raised.fill", "#80B3E6"},
	CategoryInfo{CategoryOther, "Other", "ellipsis.circle.fill", "#8E8E93"},
)

// DefaultTaxonomy returns the built-in spending taxonomy.
func DefaultTaxonomy() *Taxonomy {
	return defaultTaxonomy
}
