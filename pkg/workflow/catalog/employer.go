package catalog

import "github.com/matzehuels/hireflow/pkg/workflow"

const (
	user   = workflow.ActorUser
	admin  = workflow.ActorAdmin
	system = workflow.ActorSystem
)

// employerSteps is the shared employer journey. Singapore uses it as is;
// the Philippines variant drops the Single Pass login option.
var employerSteps = []workflow.Step{
	{
		ID:          "E1",
		Title:       "1. Accessing the Website",
		Actor:       user,
		Description: "An employer visits MingHwee.com and is redirected to the appropriate regional URL based on their detected location.",
	},
	{
		ID:          "E2",
		Title:       "2. Employer Login",
		Actor:       user,
		Description: "The employer logs in using one of the available secure login methods.",
		Branches: []workflow.Step{
			{ID: "E2a", Title: "Single Pass Login", Actor: system, Description: "A quick, unified login system for faster access."},
			{ID: "E2b", Title: "OTP Login", Actor: system, Description: "Secure login via a One-Time Password sent to the employer’s registered phone or email."},
		},
	},
	{
		ID:          "E3",
		Title:       "3. Profile Creation",
		Actor:       user,
		Description: "After logging in, the employer creates their profile with company information. First-time employers are prompted to attend an Employer Orientation Program (EOP), with reminders sent by the admin.",
	},
	{
		ID:          "E4",
		Title:       "4. Admin Approval",
		Actor:       admin,
		Description: "The admin reviews the employer’s profile details for verification and approval.",
		Branches: []workflow.Step{
			{ID: "E4a", Title: "Profile Approved", Actor: system, Description: "The employer is granted approval and can post jobs on the platform."},
			{ID: "E4b", Title: "Profile Rejected", Actor: system, Description: "The employer is notified and cannot post jobs until issues are resolved.", Final: true},
		},
	},
	{
		ID:          "E5",
		Title:       "5. Posting Jobs",
		Actor:       user,
		Description: "Once approved, the employer can post jobs. Job posting for Domestic Helpers in Singapore is restricted by default, but other regions have open job categories.",
	},
	{
		ID:          "E6",
		Title:       "6. Candidate Matching",
		Actor:       system,
		Description: "The platform’s automation system analyzes job requirements and matches relevant candidates based on their profile, skills, and experience.",
	},
	{
		ID:          "E7",
		Title:       "7. Interview Invitations",
		Actor:       user,
		Description: "The employer reviews matched candidates and sends interview invitations. Interview links are automatically sent upon scheduling.",
	},
	{
		ID:          "E8",
		Title:       "8. Interview Management",
		Actor:       user,
		Description: "The employer manages interviews through their dashboard.",
		Branches: []workflow.Step{
			{ID: "E8a", Title: "View Upcoming", Actor: system, Description: "View all scheduled interviews."},
			{ID: "E8b", Title: "View Past", Actor: system, Description: "Review completed interviews."},
			{ID: "E8c", Title: "Reschedule", Actor: system, Description: "Option to change the interview time."},
		},
	},
	{
		ID:          "E9",
		Title:       "9. Payment",
		Actor:       user,
		Description: "After a successful interview, the employer pays to hire the candidate, which triggers the documentation process.",
	},
	{
		ID:          "E10",
		Title:       "10. Candidate Document Uploads",
		Actor:       system,
		Description: "The candidate uploads necessary documents in two phases for employer verification.",
		Branches: []workflow.Step{
			{ID: "E10a", Title: "Phase 1 Docs (Pre-Arrival)", Actor: system, Description: "• Passport\n• Work Visa\n• Medical Certificate\n• Experience Certificate\n• Skills Certification"},
			{ID: "E10b", Title: "Phase 2 Docs (Post-Arrival)", Actor: system, Description: "• Work Permit\n• Visa\n• Thumbprint\n• MOM Certificate\n• Housing Contract"},
		},
	},
	{
		ID:          "E11",
		Title:       "11. Document Verification",
		Actor:       user,
		Description: "The employer reviews the uploaded documents and updates the status in the progress tracker for each phase.",
		Branches: []workflow.Step{
			{ID: "E11a", Title: "Verify Phase 1", Actor: system, Description: "Status updated to Phase 1 Complete."},
			{ID: "E11b", Title: "Verify Phase 2", Actor: system, Description: "Status updated to Phase 2 Complete."},
			{ID: "E11c", Title: "Re-upload Requested", Actor: system, Description: "Candidate is prompted to re-upload incorrect documents."},
			{ID: "E11d", Title: "Application Rejected", Actor: system, Description: "If documents do not meet requirements, the application is rejected.", Final: true},
		},
	},
	{
		ID:          "E12",
		Title:       "12. Sending the Contract",
		Actor:       user,
		Description: "Once all documents are verified, the employer sends the official contract to the candidate for review and digital signature.",
	},
	{
		ID:          "E13",
		Title:       "13. Post-Arrival & Finalization",
		Actor:       admin,
		Description: "After the contract is signed and the worker arrives, a series of final procedures are executed to finalize employment.",
		Branches: []workflow.Step{
			{ID: "E13a", Title: "Confirm Medical Clearance", Actor: system, Description: "Await confirmation of the worker’s medical clearance before proceeding."},
			{ID: "E13b", Title: "Placement Fee Payment", Actor: user, Description: "Employer makes payment for the placement fee (loan) via PayNow, Cash, or Cheque."},
			{ID: "E13c", Title: "Thumbprinting Scheduled", Actor: admin, Description: "Admin arranges a date with the employer for the worker’s thumbprinting at MOM."},
			{ID: "E13d", Title: "Work Permit Delivery", Actor: system, Description: "After thumbprinting, the work permit is delivered to the employer’s designated address."},
		},
	},
	{
		ID:          "E14",
		Title:       "14. Hire Finalized",
		Actor:       system,
		Description: "Upon thumbprinting completion and work permit delivery, the worker is officially hired and the onboarding process is complete.",
		Final:       true,
	},
}
