package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dto "grades_backend/internals/features/grades/dto"
	model "grades_backend/internals/features/grades/model"
)

const queryTimeout = 10 * time.Second

// GradeRepository is the document-store layer over the grades collection.
// Not-found is a normal outcome here: (nil, nil) or false, never an error.
// A malformed id is indistinguishable from a missing record.
type GradeRepository struct {
	col *mongo.Collection
}

func NewGradeRepository(db *mongo.Database) *GradeRepository {
	return &GradeRepository{col: db.Collection("grades")}
}

// Create stamps the professor identity and both timestamps server-side.
// Range validation already happened at the controller.
func (r *GradeRepository) Create(ctx context.Context, req *dto.GradeCreateRequest, professorID, professorName string) (*model.GradeModel, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now().UTC()
	m := req.ToModel()
	m.ProfessorID = professorID
	m.ProfessorName = professorName
	m.CreatedAt = now
	m.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return m, nil
}

func (r *GradeRepository) GetByID(ctx context.Context, gradeID string) (*model.GradeModel, error) {
	oid, err := primitive.ObjectIDFromHex(gradeID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m model.GradeModel
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// GetAll pages through every grade, most recent first. Bounds on skip and
// limit are the router's job; the store trusts them.
func (r *GradeRepository) GetAll(ctx context.Context, skip, limit int64) ([]model.GradeModel, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *GradeRepository) GetByStudent(ctx context.Context, studentID string) ([]model.GradeModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"student_id": studentID}, opts)
}

// GetByCourse orders by student name ascending for roster-style display.
func (r *GradeRepository) GetByCourse(ctx context.Context, courseID string) ([]model.GradeModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "student_name", Value: 1}})
	return r.find(ctx, bson.M{"course_id": courseID}, opts)
}

func (r *GradeRepository) GetByProfessor(ctx context.Context, professorID string) ([]model.GradeModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"professor_id": professorID}, opts)
}

// Update applies the non-nil fields and refreshes updated_at in a single
// atomic find-and-modify, so concurrent updates never interleave.
func (r *GradeRepository) Update(ctx context.Context, gradeID string, req *dto.GradeUpdateRequest) (*model.GradeModel, error) {
	oid, err := primitive.ObjectIDFromHex(gradeID)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if req.Grade != nil {
		set["grade"] = *req.Grade
	}
	if req.Comments != nil {
		set["comments"] = *req.Comments
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m model.GradeModel
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

// Delete is unconditional; it reports whether a record was removed.
func (r *GradeRepository) Delete(ctx context.Context, gradeID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(gradeID)
	if err != nil {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *GradeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *GradeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.GradeModel, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	grades := make([]model.GradeModel, 0)
	if err := cur.All(ctx, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}
