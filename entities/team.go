package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamField string

const (
	TeamID                 TeamField = "_id"
	TeamCreatorID          TeamField = "creator_id"
	TeamHackathonID        TeamField = "hackathon_id"
	TeamHackathonName      TeamField = "hackathon_name"
	TeamPostTitle          TeamField = "post_title"
	TeamIdeaDescription    TeamField = "idea_description"
	TeamMembers            TeamField = "team_members"
	TeamMaxTeamSize        TeamField = "max_team_size"
	TeamJoinCode           TeamField = "join_code"
	TeamJoinRequests       TeamField = "join_requests"
	TeamCreatedAt          TeamField = "created_at"
	TeamHackathonStartedAt TeamField = "hackathon_started_at"
	TeamHackathonEndsAt    TeamField = "hackathon_ends_at"
	TeamHackathonDuration  TeamField = "hackathon_duration"
	TeamProjectName        TeamField = "project_name"
	TeamIsSubmitted        TeamField = "is_submitted"
	TeamProjectLink        TeamField = "project_link"
	TeamFinalDescription   TeamField = "final_description"
	TeamSubmittedAt        TeamField = "submitted_at"
)

// Team is the struct to store a team formation effort and its hackathon session
type Team struct {
	ID              primitive.ObjectID `json:"_id" bson:"_id"`
	CreatorID       string             `json:"creator_id" bson:"creator_id" validate:"required"`
	HackathonID     string             `json:"hackathon_id" bson:"hackathon_id" validate:"required"`
	HackathonName   string             `json:"hackathon_name" bson:"hackathon_name"`
	PostTitle       string             `json:"post_title" bson:"post_title" validate:"required"`
	IdeaDescription string             `json:"idea_description" bson:"idea_description"`
	TeamMembers     []string           `json:"team_members" bson:"team_members" validate:"required,min=1"`
	MaxTeamSize     int                `json:"max_team_size" bson:"max_team_size" validate:"min=1"`
	JoinCode        string             `json:"join_code,omitempty" bson:"join_code" validate:"required"`
	JoinRequests    []string           `json:"join_requests" bson:"join_requests"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`

	HackathonStartedAt *time.Time `json:"hackathon_started_at,omitempty" bson:"hackathon_started_at,omitempty"`
	HackathonEndsAt    *time.Time `json:"hackathon_ends_at,omitempty" bson:"hackathon_ends_at,omitempty"`
	// HackathonDuration is the length of the session in hours
	HackathonDuration int    `json:"hackathon_duration,omitempty" bson:"hackathon_duration,omitempty"`
	ProjectName       string `json:"project_name,omitempty" bson:"project_name,omitempty"`

	IsSubmitted      bool       `json:"is_submitted" bson:"is_submitted"`
	ProjectLink      string     `json:"project_link,omitempty" bson:"project_link,omitempty"`
	FinalDescription string     `json:"final_description,omitempty" bson:"final_description,omitempty"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty" bson:"submitted_at,omitempty"`
}

// HasMember checks whether the user is a member of the team
func (t *Team) HasMember(userID string) bool {
	return containsString(t.TeamMembers, userID)
}

// HasJoinRequest checks whether the user has a pending request to join the team
func (t *Team) HasJoinRequest(userID string) bool {
	return containsString(t.JoinRequests, userID)
}

// IsFull checks whether the team has reached its maximum size
func (t *Team) IsFull() bool {
	return len(t.TeamMembers) >= t.MaxTeamSize
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
