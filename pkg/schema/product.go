package schema

const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "style", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "description", "type": "string"},
		{"name": "sizes", "type": {"type": "array", "items": "string"}},
		{"name": "colors", "type": {"type": "array", "items": "string"}},
		{"name": "image", "type": "string"}
	]
}`

type ProductV1 struct {
	ID          int64    `avro:"id"`
	Name        string   `avro:"name"`
	Category    string   `avro:"category"`
	Style       string   `avro:"style"`
	Price       float64  `avro:"price"`
	Description string   `avro:"description"`
	Sizes       []string `avro:"sizes"`
	Colors      []string `avro:"colors"`
	Image       string   `avro:"image"`
}
