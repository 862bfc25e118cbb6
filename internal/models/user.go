package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// ScheduleEntry is one recurring lesson slot embedded in a user document.
type ScheduleEntry struct {
	Day           string `bson:"day" json:"day"`
	Time          string `bson:"time" json:"time"`
	Teacher       string `bson:"teacher" json:"teacher"`
	Plan          string `bson:"plan" json:"plan"`
	SessionLink   string `bson:"sessionLink" json:"sessionLink"`
	SessionActive bool   `bson:"sessionActive" json:"sessionActive"`
}

// AttendanceEntry records one day's status. At most one entry per date
// is kept for a given user.
type AttendanceEntry struct {
	Date   string `bson:"date" json:"date"`
	Status string `bson:"status" json:"status"`
}

// User is a platform account. MemberID is the externally assigned
// membership number users log in with; the Mongo _id stays internal.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	MemberID   string             `bson:"id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Password   string             `bson:"password" json:"password"`
	Role       string             `bson:"role" json:"role"`
	Grade      string             `bson:"grade,omitempty" json:"grade,omitempty"`
	Group      string             `bson:"group,omitempty" json:"group,omitempty"`
	TeacherID  string             `bson:"teacherId,omitempty" json:"teacherId,omitempty"`
	Schedule   []ScheduleEntry    `bson:"schedule" json:"schedule"`
	Attendance []AttendanceEntry  `bson:"attendance" json:"attendance"`
}
