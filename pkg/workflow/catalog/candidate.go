package catalog

import "github.com/matzehuels/hireflow/pkg/workflow"

var candidateSteps = []workflow.Step{
	{
		ID:          "C1",
		Title:       "1. Accessing the Website",
		Actor:       user,
		Description: "A candidate visits Minghwee.com to begin their job search journey.",
	},
	{
		ID:          "C2",
		Title:       "2. Candidate Login",
		Actor:       user,
		Description: "The candidate logs in based on their geographical location.",
		Branches: []workflow.Step{
			{
				ID:          "C2a",
				Title:       "Singapore Candidate",
				Actor:       system,
				Description: "Candidates from Singapore have two login options.",
				Branches: []workflow.Step{
					{ID: "C2a-1", Title: "Single Pass Login", Actor: system, Description: "A quick, unified login system."},
					{ID: "C2a-2", Title: "OTP Login", Actor: system, Description: "Secure login via a One-Time Password."},
				},
			},
			{
				ID:          "C2b",
				Title:       "International Candidate",
				Actor:       system,
				Description: "Candidates from all other countries use OTP.",
				Branches: []workflow.Step{
					{ID: "C2b-1", Title: "OTP Login", Actor: system, Description: "Secure login via a One-Time Password."},
				},
			},
		},
	},
	{
		ID:          "C3",
		Title:       "3. New Candidate Registration",
		Actor:       user,
		Description: "Candidate completes their profile by providing detailed information, documents, and preferences through a multi-step application process.",
		Branches: []workflow.Step{
			{
				ID:    "C3a",
				Title: "1. Fill Up Biodata",
				Actor: user,
				Description: "• Personal Info: Full Name, DOB, Nationality, Gender\n" +
					"• Contact Details: Phone, Email, Address\n" +
					"• Educational Background\n" +
					"• Employment History\n" +
					"• Skills & Qualifications\n" +
					"• Emergency Contact",
			},
			{
				ID:    "C3b",
				Title: "2. Upload Photo",
				Actor: user,
				Description: "• Specs: Recent, high-res passport-sized photo.\n" +
					"• Background: Neutral (white/light).\n" +
					"• Format: JPEG/PNG, under 2MB.",
			},
			{
				ID:    "C3c",
				Title: "3. Video Interview",
				Actor: user,
				Description: "• Instructions: Record in a quiet, well-lit space with professional attire.\n" +
					"• Questions: Background, job interest, strengths, etc.\n" +
					"• Guidelines: 5-7 mins max, MP4/MOV format.",
			},
			{
				ID:    "C3d",
				Title: "4. Passport Copy",
				Actor: user,
				Description: "• Required: Clear, scanned copy of personal details page.\n" +
					"• Validity: Must be valid for at least 6 months.\n" +
					"• Format: PDF/JPEG/PNG, under 3MB.",
			},
			{
				ID:    "C3e",
				Title: "5. Select Job Interests",
				Actor: user,
				Description: "• Job Categories: Choose preferred industry/roles.\n" +
					"• Location Preferences: Indicate desired locations.\n" +
					"• Salary Expectations: Provide a salary range.\n" +
					"• Job Type: Full-time, part-time, contract, etc.",
			},
			{
				ID:    "C3f",
				Title: "6. Complete & Sign Forms",
				Actor: user,
				Description: "• Forms to Sign: Employment Contract, Medical Form, Confidentiality Agreement.\n" +
					"• Signature: Review all terms and provide a digital or manual signature.",
			},
		},
	},
	{
		ID:          "C4",
		Title:       "4. Automated Job Matching",
		Actor:       system,
		Description: "Once the profile is created, the platform’s automation system matches the candidate to relevant job openings based on their profile.",
	},
	{
		ID:          "C5",
		Title:       "5. Internal Review Process",
		Actor:       system,
		Description: "Behind the scenes, matched profiles are reviewed by employers, who can then send interview invites that require admin approval.",
		Branches: []workflow.Step{
			{ID: "C5a", Title: "Employer Sends Invite", Actor: admin, Description: "An employer reviews the matched candidate and initiates an interview invite."},
			{ID: "C5b", Title: "Admin Approves Invite", Actor: admin, Description: "The admin must approve the invite before it is sent to the candidate."},
		},
	},
	{
		ID:          "C6",
		Title:       "6. Receive Interview Invite",
		Actor:       user,
		Description: "Once approved, the interview invite appears on the candidate's dashboard with job details.",
		Branches: []workflow.Step{
			{ID: "C6a", Title: "Accept Invite", Actor: system, Description: "Candidate accepts and proceeds to scheduling."},
			{ID: "C6b", Title: "Reject Invite", Actor: system, Description: "Candidate declines the interview. The process ends for this job.", Final: true},
		},
	},
	{
		ID:          "C7",
		Title:       "7. Interview Scheduled",
		Actor:       system,
		Description: "Upon acceptance, an interview link is automatically sent to both the candidate and the employer.",
	},
	{
		ID:          "C8",
		Title:       "8. Post-Interview Decision",
		Actor:       user,
		Description: "After the interview, if selected, the candidate decides whether to proceed with the hiring process.",
		Branches: []workflow.Step{
			{ID: "C8a", Title: "Proceed to Next Step", Actor: system, Description: "Candidate wishes to continue to the documentation stage."},
			{ID: "C8b", Title: "Withdraw Application", Actor: system, Description: "Candidate is no longer interested. The process ends.", Final: true},
		},
	},
	{
		ID:          "C9",
		Title:       "9. Document Uploads",
		Actor:       user,
		Description: "The candidate uploads required documents in two separate phases as requested.",
		Branches: []workflow.Step{
			{ID: "C9a", Title: "Phase 1: Initial Docs", Actor: system, Description: "• Identity Proof: Passport, National ID\n• Work Permits\n• Medical Certificate\n• Experience Certificate\n• Skills Certification"},
			{ID: "C9b", Title: "Phase 2: Arrival Docs (SG)", Actor: system, Description: "• Work Permit\n• Visa\n• Thumbprint\n• MOM Certificate\n• Housing Contract"},
		},
	},
	{
		ID:          "C10",
		Title:       "10. Document Verification",
		Actor:       admin,
		Description: "The employer reviews the uploaded documents and updates the candidate’s status in a progress tracker.",
		Branches: []workflow.Step{
			{ID: "C10a", Title: "Documents Approved", Actor: system, Description: "All documents are verified and accepted."},
			{ID: "C10b", Title: "Re-upload Requested", Actor: system, Description: "Candidate is asked to re-upload incorrect or missing documents."},
			{ID: "C10c", Title: "Application Rejected", Actor: system, Description: "Documents do not meet requirements. Process ends.", Final: true},
		},
	},
	{
		ID:          "C11",
		Title:       "11. Offer Letter & Post-Arrival Procedures",
		Actor:       admin,
		Description: "An offer is sent and signed. After the worker arrives in Singapore, a series of procedures are executed to finalize employment and documentation.",
		Branches: []workflow.Step{
			{ID: "C11a", Title: "1. Medical Clearance", Actor: system, Description: "Wait for transport company to confirm worker's medical clearance, then confirm fetch date/time with employer."},
			{ID: "C11b", Title: "2. Placement Fee Payment", Actor: admin, Description: "Remind employer to pay placement fee (loan) on fetching day.\nModes: PayNow, Cash, Cheque."},
			{ID: "C11c", Title: "3. Document Collection", Actor: admin, Description: "On handover day, collect original employment contract and worker’s SIP certificate. Provide a copy of the SIP certificate to the employer."},
			{ID: "C11d", Title: "4. Handover Briefing", Actor: admin, Description: "Brief worker and employer on documents for signing. Ensure the In-Principle Approval (IPA) form is signed by both parties."},
			{ID: "C11e", Title: "5. Schedule Thumbprint", Actor: admin, Description: "Arrange a date with the employer for the worker’s thumbprinting. Transport will be arranged to pick up the worker."},
			{ID: "C11f", Title: "6. Request IC Details", Actor: admin, Description: "Request IC details of up to three authorized persons for work permit collection for the MOM portal."},
			{ID: "C11g", Title: "7. Work Permit Delivery", Actor: system, Description: "After thumbprinting at MOM is complete, the work permit card is delivered to the employer's designated address."},
		},
	},
	{
		ID:          "C12",
		Title:       "12. Finalizing the Hire",
		Actor:       system,
		Description: "Once the work permit is delivered, the candidate is officially hired, and the onboarding process begins.",
	},
	{
		ID:          "C13",
		Title:       "13. Additional Philippine Agency Processes",
		Actor:       admin,
		Description: "For first-time workers from the Philippines, a series of government-mandated courses and certifications must be completed before departure.",
		Branches: []workflow.Step{
			{ID: "C13a", Title: "TESDA Course", Actor: admin, Description: "Admin books the 3-day TESDA course. Worker attends with required documents. System tracks progress and sends reminders."},
			{ID: "C13b", Title: "PDOS Course", Actor: admin, Description: "Admin books the 1-day online Pre-Departure Orientation Seminar. Certificate can be collected same day."},
			{ID: "C13c", Title: "OWWA Course", Actor: admin, Description: "Admin books the OWWA course online and submits required forms and documents on behalf of the worker."},
			{ID: "C13d", Title: "Insurance", Actor: admin, Description: "Admin fills out insurance form and pays on behalf of the worker. Policy is emailed to the worker."},
			{ID: "C13e", Title: "OEC (Overseas Employment Cert.)", Actor: user, Description: "Worker completes e-Registration. Admin submits all course certificates and documents. Once approved, admin arranges flight bookings."},
			{ID: "C13f", Title: "Final Preparations", Actor: admin, Description: "A pregnancy serum test is required 3 days before departure. Worker stays in Manila accommodation for 2-3 days for a pre-departure briefing."},
		},
		Final: true,
	},
}
