package kafka

// OrderChangedSchema is the Avro schema of the order lifecycle event. previous is
// null for the creation event.
const OrderChangedSchema = `{
	"type": "record",
	"name": "OrderChanged",
	"namespace": "wandshop.order",
	"fields": [
		{"name": "order_id", "type": "string"},
		{"name": "wizard_id", "type": "string"},
		{"name": "wand_id", "type": "string"},
		{"name": "previous", "type": ["null", "string"], "default": null},
		{"name": "status", "type": "string"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`
