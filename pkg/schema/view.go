package schema

const ProductViewSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "product_view",
	"fields": [
		{"name": "product_id", "type": "long"},
		{"name": "user_id", "type": "long"},
		{"name": "viewed_at", "type": "string"}
	]
}`

type ProductViewV1 struct {
	ProductID int64  `avro:"product_id"`
	UserID    int64  `avro:"user_id"`
	ViewedAt  string `avro:"viewed_at"`
}
