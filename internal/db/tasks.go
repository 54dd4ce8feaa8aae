package db

import (
	"context"
	"time"

	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Задачи с данными клиента и исполнителя
func taskPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collCustomers,
			"localField":   "customerId",
			"foreignField": "_id",
			"as":           "customer",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$customer", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collUsers,
			"localField":   "assignedToId",
			"foreignField": "_id",
			"as":           "assignedTo",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$assignedTo", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"customer.email":       0,
			"customer.phone":       0,
			"customer.createdAt":   0,
			"customer.updatedAt":   0,
			"assignedTo.email":     0,
			"assignedTo.password":  0,
			"assignedTo.role":      0,
			"assignedTo.createdAt": 0,
		}}},
	}
}

func (d *LaundryDB) findTasks(ctx context.Context, match bson.M) ([]models.Task, error) {
	cur, err := d.db.Collection(collTasks).Aggregate(ctx, taskPipeline(match))
	if err != nil {
		return nil, storeErr(err)
	}
	defer cur.Close(ctx)

	tasks := []models.Task{}
	for cur.Next(ctx) {
		var task models.Task
		err := cur.Decode(&task)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, storeErr(cur.Err())
}

// Условия фильтра объединяются через AND
func (d *LaundryDB) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	match := bson.M{}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Priority != "" {
		match["priority"] = filter.Priority
	}
	if filter.CustomerID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.CustomerID)
		if err != nil {
			return []models.Task{}, nil
		}
		match["customerId"] = oid
	}
	if filter.AssignedToID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.AssignedToID)
		if err != nil {
			return []models.Task{}, nil
		}
		match["assignedToId"] = oid
	}
	return d.findTasks(ctx, match)
}

func (d *LaundryDB) GetTask(ctx context.Context, id string) (models.Task, error) {
	oid, err := objectID(id, models.ErrTaskNotFound)
	if err != nil {
		return models.Task{}, err
	}
	tasks, err := d.findTasks(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.Task{}, err
	}
	if len(tasks) == 0 {
		return models.Task{}, models.ErrTaskNotFound
	}
	return tasks[0], nil
}

func (d *LaundryDB) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	now := time.Now().UTC()
	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Customer = nil
	task.AssignedTo = nil
	_, err := d.db.Collection(collTasks).InsertOne(ctx, task)
	if err != nil {
		d.logError("Insert task", "CreateTask", err)
		return models.Task{}, storeErr(err)
	}
	return d.GetTask(ctx, task.ID.Hex())
}

func (d *LaundryDB) UpdateTask(ctx context.Context, id string, fields models.TaskUpdate) (models.Task, error) {
	oid, err := objectID(id, models.ErrTaskNotFound)
	if err != nil {
		return models.Task{}, err
	}
	set := bson.M{"updatedAt": time.Now().UTC()}
	unset := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Description != nil {
		set["description"] = *fields.Description
	}
	if fields.Status != nil {
		set["status"] = *fields.Status
	}
	if fields.Priority != nil {
		set["priority"] = *fields.Priority
	}
	if fields.DueDate != nil {
		set["dueDate"] = *fields.DueDate
	}
	if fields.Items != nil {
		set["items"] = *fields.Items
	}
	if fields.Weight != nil {
		set["weight"] = *fields.Weight
	}
	if fields.HasBlankets != nil {
		set["hasBlankets"] = *fields.HasBlankets
	}
	if fields.BlanketCount != nil {
		set["blanketCount"] = *fields.BlanketCount
	}
	if fields.IsPaid != nil {
		set["isPaid"] = *fields.IsPaid
	}
	if fields.TotalPrice != nil {
		set["totalPrice"] = *fields.TotalPrice
	}
	if fields.ServiceType != nil {
		set["serviceType"] = *fields.ServiceType
	}
	if fields.CustomerID != nil {
		cid, err := objectID(*fields.CustomerID, models.ErrCustomerNotFound)
		if err != nil {
			return models.Task{}, err
		}
		set["customerId"] = cid
	}
	if fields.AssignedToID != nil {
		// пустая строка снимает исполнителя
		if *fields.AssignedToID == "" {
			unset["assignedToId"] = ""
		} else {
			uid, err := objectID(*fields.AssignedToID, models.ErrUserNotFound)
			if err != nil {
				return models.Task{}, err
			}
			set["assignedToId"] = uid
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := d.db.Collection(collTasks).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return models.Task{}, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return models.Task{}, models.ErrTaskNotFound
	}
	return d.GetTask(ctx, id)
}

func (d *LaundryDB) UpdateTaskStatus(ctx context.Context, id string, status models.Status) (models.Task, error) {
	return d.UpdateTask(ctx, id, models.TaskUpdate{Status: &status})
}

func (d *LaundryDB) DeleteTask(ctx context.Context, id string) error {
	oid, err := objectID(id, models.ErrTaskNotFound)
	if err != nil {
		return err
	}
	res, err := d.db.Collection(collTasks).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return models.ErrTaskNotFound
	}
	return nil
}
