package category

// Category is one entry of the fixed service taxonomy.
type Category struct {
	ID            string   `json:"id,omitempty" bson:"_id,omitempty"`
	Name          string   `json:"name" bson:"name"`
	DisplayName   string   `json:"displayName" bson:"displayName"`
	Subcategories []string `json:"subcategories" bson:"subcategories"`
	Keywords      []string `json:"keywords" bson:"keywords"`
}
