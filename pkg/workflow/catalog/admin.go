package catalog

import "github.com/matzehuels/hireflow/pkg/workflow"

var adminSteps = []workflow.Step{
	{
		ID:          "A1",
		Title:       "1. Admin Login",
		Actor:       admin,
		Description: "Admin logs into the platform to access the admin panel.",
	},
	{
		ID:          "A2",
		Title:       "2. Admin Dashboard",
		Actor:       admin,
		Description: "The central hub for monitoring platform activity. The admin can navigate to different management sections from here.",
		Branches: []workflow.Step{
			{
				ID:          "A2a",
				Title:       "View Statistics",
				Actor:       system,
				Description: "Dashboard shows hire stats, popular job categories, total users, active employers, new jobs, and pending approvals.",
			},
			{
				ID:          "A2b",
				Title:       "Navigate Panel",
				Actor:       system,
				Description: "Uses the navigation bar to access: Dashboard, Candidate, Employer, and Approval sections.",
			},
		},
	},
	{
		ID:          "A3",
		Title:       "3. Management Sections",
		Actor:       admin,
		Description: "Admin performs specific management tasks based on the selected navigation option.",
		Branches: []workflow.Step{
			{
				ID:          "A3a",
				Title:       "Candidate Management",
				Actor:       admin,
				Description: "View a list of all candidates. Can view individual profiles (name, contact, skills, etc.) and their uploaded documents.",
			},
			{
				ID:          "A3b",
				Title:       "Employer Management",
				Actor:       admin,
				Description: "View a list of all employers. Can view profiles, verification documents (UOM), and manage their job posting status.",
				Branches: []workflow.Step{
					{ID: "A3b-1", Title: "Approve Employer", Actor: system, Description: "Grant the employer rights to post jobs."},
					{ID: "A3b-2", Title: "Deny Employer", Actor: system, Description: "Reject the employer's application."},
					{ID: "A3b-3", Title: "Status Pending", Actor: system, Description: "The default status until a decision is made."},
				},
			},
			{
				ID:          "A3c",
				Title:       "Interview Approval",
				Actor:       admin,
				Description: "Review and approve interview invitations sent from employers to candidates. Approval is required for the interview to proceed.",
			},
		},
		Final: true,
	},
}
