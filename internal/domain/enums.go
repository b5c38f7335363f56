package domain

// ReviewMode is the direction in which an item is quizzed.
type ReviewMode string

const (
	// ReviewModeRecognition shows the term and asks for its meaning.
	ReviewModeRecognition ReviewMode = "RECOGNITION"
	// ReviewModeProduction shows the meaning and asks for the term.
	ReviewModeProduction ReviewMode = "PRODUCTION"
)

func (m ReviewMode) String() string { return string(m) }

func (m ReviewMode) IsValid() bool {
	switch m {
	case ReviewModeRecognition, ReviewModeProduction:
		return true
	}
	return false
}

// AllReviewModes returns every supported mode in a stable order.
func AllReviewModes() []ReviewMode {
	return []ReviewMode{ReviewModeRecognition, ReviewModeProduction}
}

// ReviewGrade is the learner's self-assessment bucket shown on the review screen.
// Scheduling only distinguishes correct from incorrect; see Correct.
type ReviewGrade string

const (
	ReviewGradeJustLearned   ReviewGrade = "JUST_LEARNED"
	ReviewGradeStillLearning ReviewGrade = "STILL_LEARNING"
	ReviewGradeGood          ReviewGrade = "GOOD"
	ReviewGradeEasy          ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeJustLearned, ReviewGradeStillLearning, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// Correct reports whether the grade counts as a correct recall.
func (g ReviewGrade) Correct() bool {
	return g == ReviewGradeGood || g == ReviewGradeEasy
}

// ActivityType classifies entries of the learner's activity feed.
type ActivityType string

const (
	ActivitySessionCreated  ActivityType = "SESSION_CREATED"
	ActivityOutcomeApplied  ActivityType = "OUTCOME_APPLIED"
	ActivityItemDeactivated ActivityType = "ITEM_DEACTIVATED"
	ActivityProgressReset   ActivityType = "PROGRESS_RESET"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivitySessionCreated, ActivityOutcomeApplied, ActivityItemDeactivated, ActivityProgressReset:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}
