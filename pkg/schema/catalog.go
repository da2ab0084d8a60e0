package schema

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Model names in the fixed catalog.
const (
	ModelCourse     = "Course"
	ModelModule     = "Module"
	ModelAssignment = "Assignment"
	ModelQuiz       = "Quiz"
	ModelUser       = "User"
	ModelEnrollment = "Enrollment"
	ModelSubmission = "Submission"
)

// Definition describes one document schema: the collection it is stored in,
// the server-side $jsonSchema validator, and the indexes that back its
// uniqueness constraints.
type Definition struct {
	Name       string
	Collection string
	Validator  bson.M
	Indexes    []mongo.IndexModel
}

// Catalog returns the fixed set of document schemas. The catalog is known at
// process start and never depends on the request.
func Catalog() []Definition {
	return []Definition{
		{
			Name:       ModelCourse,
			Collection: "courses",
			Validator: validator([]string{"code", "title"}, bson.M{
				"code":  bson.M{"bsonType": "string", "minLength": 1},
				"title": bson.M{"bsonType": "string", "minLength": 1},
			}),
			Indexes: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "code", Value: 1}}),
			},
		},
		{
			Name:       ModelModule,
			Collection: "modules",
			Validator: validator([]string{"course_id", "title", "position"}, bson.M{
				"course_id": bson.M{"bsonType": "objectId"},
				"title":     bson.M{"bsonType": "string", "minLength": 1},
				"position":  bson.M{"bsonType": "int", "minimum": 0},
			}),
			Indexes: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "course_id", Value: 1}, {Key: "position", Value: 1}}),
			},
		},
		{
			Name:       ModelAssignment,
			Collection: "assignments",
			Validator: validator([]string{"course_id", "title"}, bson.M{
				"course_id": bson.M{"bsonType": "objectId"},
				"title":     bson.M{"bsonType": "string", "minLength": 1},
			}),
			Indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "course_id", Value: 1}}},
			},
		},
		{
			Name:       ModelQuiz,
			Collection: "quizzes",
			Validator: validator([]string{"course_id", "title"}, bson.M{
				"course_id": bson.M{"bsonType": "objectId"},
				"title":     bson.M{"bsonType": "string", "minLength": 1},
			}),
			Indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "course_id", Value: 1}}},
			},
		},
		{
			Name:       ModelUser,
			Collection: "users",
			Validator: validator([]string{"email"}, bson.M{
				"email": bson.M{"bsonType": "string", "minLength": 3},
			}),
			Indexes: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "email", Value: 1}}),
			},
		},
		{
			Name:       ModelEnrollment,
			Collection: "enrollments",
			Validator: validator([]string{"user_id", "course_id"}, bson.M{
				"user_id":   bson.M{"bsonType": "objectId"},
				"course_id": bson.M{"bsonType": "objectId"},
			}),
			Indexes: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "user_id", Value: 1}, {Key: "course_id", Value: 1}}),
			},
		},
		{
			Name:       ModelSubmission,
			Collection: "submissions",
			Validator: validator([]string{"assignment_id", "user_id"}, bson.M{
				"assignment_id": bson.M{"bsonType": "objectId"},
				"user_id":       bson.M{"bsonType": "objectId"},
			}),
			Indexes: []mongo.IndexModel{
				uniqueIndex(bson.D{{Key: "assignment_id", Value: 1}, {Key: "user_id", Value: 1}}),
			},
		},
	}
}

func validator(required []string, properties bson.M) bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType":   "object",
			"required":   required,
			"properties": properties,
		},
	}
}

func uniqueIndex(keys bson.D) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(true),
	}
}
