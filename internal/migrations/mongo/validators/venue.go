package validators

import "go.mongodb.org/mongo-driver/bson"

var VenueValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"description",
			"city",
			"address",
			"capacity",
			"price_per_night",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 100,
			},

			"description": bson.M{
				"bsonType": "string",
			},

			"city": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"address": bson.M{
				"bsonType": "string",
			},

			"capacity": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"price_per_night": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"amenities": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "string",
				},
			},

			"image_url": bson.M{
				"bsonType": "string",
			},

			"rating": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
				"maximum":  5,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
