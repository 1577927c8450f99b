package validators

import "go.mongodb.org/mongo-driver/bson"

var InquiryLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"_id",
			"expires_at",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			// Slot-derived string key, not an ObjectID.
			"_id": bson.M{
				"bsonType": "string",
			},

			"expires_at": bson.M{
				"bsonType": "date",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
