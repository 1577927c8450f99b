package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingInquiryValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"venue_id",
			"company_name",
			"email",
			"start_date",
			"end_date",
			"attendee_count",
			"status",
			"created_at",
			"updated_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"venue_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"company_name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"email": bson.M{
				"bsonType": "string",
				"pattern":  "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$",
			},

			"start_date": bson.M{
				"bsonType": "date",
			},

			"end_date": bson.M{
				"bsonType": "date",
			},

			"attendee_count": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"message": bson.M{
				"bsonType":  "string",
				"maxLength": 1000,
			},

			"status": bson.M{
				"enum": []string{"pending", "confirmed", "cancelled"},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
