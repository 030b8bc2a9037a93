package repositories

import "context"

// StudentDirectory is the contract with the external class/student directory.
// The core only needs class resolution for balance derivation and key validation;
// student records themselves are owned elsewhere.
type StudentDirectory interface {
	// ResolveStudentClass returns the class ID the student currently belongs to.
	ResolveStudentClass(ctx context.Context, studentID string) (string, error)

	// ClassExists reports whether the class ID references a known class.
	ClassExists(ctx context.Context, classID string) (bool, error)
}
