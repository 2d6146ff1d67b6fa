package auth

import (
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Policy", func() {
	candidate := &Actor{ID: 10, Role: RoleCandidate}
	recruiter := &Actor{ID: 20, Role: RoleRecruiter}
	staff := &Actor{ID: 30, Role: RoleRecruiter, IsStaff: true}

	ginkgo.Describe("CanManageAccounts", func() {
		ginkgo.It("should admit both roles and staff", func() {
			gomega.Expect(CanManageAccounts(candidate)).To(gomega.BeTrue())
			gomega.Expect(CanManageAccounts(recruiter)).To(gomega.BeTrue())
			gomega.Expect(CanManageAccounts(staff)).To(gomega.BeTrue())
		})

		ginkgo.It("should deny a missing actor", func() {
			gomega.Expect(CanManageAccounts(nil)).To(gomega.BeFalse())
		})

		ginkgo.It("should deny an unknown role", func() {
			gomega.Expect(CanManageAccounts(&Actor{ID: 40, Role: "INTERN"})).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("CanAccessUser", func() {
		ginkgo.It("should let a candidate touch only their own record", func() {
			gomega.Expect(CanAccessUser(candidate, 10)).To(gomega.BeTrue())
			gomega.Expect(CanAccessUser(candidate, 11)).To(gomega.BeFalse())
		})

		ginkgo.It("should let a recruiter touch any record", func() {
			gomega.Expect(CanAccessUser(recruiter, 10)).To(gomega.BeTrue())
		})

		ginkgo.It("should let staff touch any record", func() {
			gomega.Expect(CanAccessUser(staff, 10)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("OwnsJob", func() {
		ginkgo.It("should admit the posting recruiter", func() {
			gomega.Expect(OwnsJob(recruiter, 20)).To(gomega.BeTrue())
		})

		ginkgo.It("should deny another recruiter", func() {
			gomega.Expect(OwnsJob(recruiter, 21)).To(gomega.BeFalse())
		})

		ginkgo.It("should deny the candidate even for an id collision", func() {
			gomega.Expect(OwnsJob(candidate, 10)).To(gomega.BeFalse())
		})

		ginkgo.It("should admit staff regardless of ownership", func() {
			gomega.Expect(OwnsJob(staff, 999)).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("CanViewApplication", func() {
		ginkgo.It("should admit the job owner", func() {
			gomega.Expect(CanViewApplication(recruiter, 20, 10)).To(gomega.BeTrue())
		})

		ginkgo.It("should admit the applicant", func() {
			gomega.Expect(CanViewApplication(candidate, 20, 10)).To(gomega.BeTrue())
		})

		ginkgo.It("should deny an unrelated candidate", func() {
			gomega.Expect(CanViewApplication(candidate, 20, 11)).To(gomega.BeFalse())
		})

		ginkgo.It("should deny an unrelated recruiter", func() {
			gomega.Expect(CanViewApplication(recruiter, 21, 10)).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("CanReviewApplication", func() {
		ginkgo.It("should never admit the applicant", func() {
			gomega.Expect(CanReviewApplication(candidate, 10)).To(gomega.BeFalse())
		})
	})
})
