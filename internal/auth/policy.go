package auth

// Policy predicates are pure functions over the actor and the target record.
// Callers must treat a false result as a hard gate: reject before touching
// storage. Every switch below matches the closed Role set exhaustively and
// denies on fallthrough.

// IsRecruiter reports whether the actor is an authenticated recruiter.
func IsRecruiter(a *Actor) bool {
	return a != nil && a.Role == RoleRecruiter
}

// IsCandidate reports whether the actor is an authenticated candidate.
func IsCandidate(a *Actor) bool {
	return a != nil && a.Role == RoleCandidate
}

// CanManageAccounts is the coarse gate on the account endpoints: any
// authenticated recruiter or candidate, or a staff account.
func CanManageAccounts(a *Actor) bool {
	if a == nil {
		return false
	}
	if a.IsStaff {
		return true
	}
	switch a.Role {
	case RoleRecruiter, RoleCandidate:
		return true
	default:
		return false
	}
}

// CanAccessUser is the object-level check on a user record: staff and
// recruiters may act on any record (recruiters review applicant accounts),
// candidates only on their own.
func CanAccessUser(a *Actor, targetUserID int64) bool {
	if a == nil {
		return false
	}
	if a.IsStaff {
		return true
	}
	switch a.Role {
	case RoleRecruiter:
		return true
	case RoleCandidate:
		return a.ID == targetUserID
	default:
		return false
	}
}

// OwnsJob gates job mutation: staff or the posting recruiter.
func OwnsJob(a *Actor, jobRecruiterID int64) bool {
	if a == nil {
		return false
	}
	if a.IsStaff {
		return true
	}
	return a.Role == RoleRecruiter && a.ID == jobRecruiterID
}

// CanReviewApplication gates application status changes: staff or the
// recruiter who owns the referenced job. The applicant never qualifies.
func CanReviewApplication(a *Actor, jobRecruiterID int64) bool {
	return OwnsJob(a, jobRecruiterID)
}

// CanViewApplication additionally admits the applicant reading their own
// submission.
func CanViewApplication(a *Actor, jobRecruiterID int64, candidateID int64) bool {
	if a == nil {
		return false
	}
	if OwnsJob(a, jobRecruiterID) {
		return true
	}
	return a.Role == RoleCandidate && a.ID == candidateID
}
