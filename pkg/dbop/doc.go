// Package dbop wraps individual database calls in a uniform
// timeout-and-error-classification contract.
//
// Run races a call against a timer and tags every failure with a small Kind
// taxonomy (duplicate key, validation, timeout, driver, unknown) so request
// handlers never inspect driver-specific error shapes. The timer does not
// cancel the underlying call: a reported timeout means the outcome is unknown,
// and the call may still apply after the caller has moved on. This mirrors the
// usual fire-and-forget timeout racing found in document-database backends and
// is centralized here so the caveat lives in one documented place.
//
//	courses := scope.Models.MustModel(schema.ModelCourse)
//	doc, err := dbop.Run(ctx, 30*time.Second, func(ctx context.Context) (*Course, error) {
//		var c Course
//		err := courses.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
//		return &c, err
//	})
//	if err != nil {
//		dbop.WriteError(w, err) // status picked from the error's kind
//		return
//	}
package dbop
