package schema

const OrderPlacedSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "order_placed",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "user_id", "type": "long"},
		{"name": "total", "type": "double"},
		{"name": "status", "type": "string"},
		{"name": "created_at", "type": "string"},
		{"name": "items", "type": {"type": "array", "items": {
			"type": "record",
			"name": "order_line",
			"fields": [
				{"name": "product_id", "type": "long"},
				{"name": "size", "type": "string"},
				{"name": "color", "type": "string"},
				{"name": "name", "type": "string"},
				{"name": "price", "type": "double"},
				{"name": "quantity", "type": "int"}
			]
		}}}
	]
}`

type OrderLineV1 struct {
	ProductID int64   `avro:"product_id"`
	Size      string  `avro:"size"`
	Color     string  `avro:"color"`
	Name      string  `avro:"name"`
	Price     float64 `avro:"price"`
	Quantity  int     `avro:"quantity"`
}

type OrderPlacedV1 struct {
	OrderID   string        `avro:"order_id"`
	UserID    int64         `avro:"user_id"`
	Total     float64       `avro:"total"`
	Status    string        `avro:"status"`
	CreatedAt string        `avro:"created_at"`
	Items     []OrderLineV1 `avro:"items"`
}
