package queue

// DefaultBranch is the seed branch configuration, used when no branch
// document has been saved yet.
func DefaultBranch() *Branch {
	return &Branch{
		Name:          "SSS Gingoog Branch",
		Address:       "National Highway, Gingoog City, Misamis Oriental",
		Hours:         "Mon-Fri, 8:00 AM - 5:00 PM",
		Phone:         "",
		OpenTime:      "06:00",
		CloseTime:     "16:00",
		BQMSStartTime: "08:00",
		Announcement:  "",
	}
}

// DefaultCategories is the seed service catalog.
func DefaultCategories() []Category {
	return []Category{
		{
			ID: "ret_death", Label: "Retirement / Death / Funeral", Icon: "🏖️", Short: "Ret/Death", AvgTime: 16, Cap: 50,
			Services: []Service{
				{ID: "retirement", Label: "Retirement Claim"},
				{ID: "death_claim", Label: "Death Claim"},
				{ID: "funeral", Label: "Funeral Benefit"},
			},
		},
		{
			ID: "smd", Label: "Sickness / Maternity / Disability", Icon: "🏥", Short: "Sick/Mat", AvgTime: 14, Cap: 50,
			Services: []Service{
				{ID: "sickness", Label: "Sickness Benefit"},
				{ID: "maternity", Label: "Maternity / Paternity"},
				{ID: "disability", Label: "Disability Benefit"},
			},
		},
		{
			ID: "loans", Label: "Loans", Icon: "💰", Short: "Loans", AvgTime: 10, Cap: 60,
			Services: []Service{
				{ID: "salary_loan", Label: "Salary Loan"},
				{ID: "calamity_loan", Label: "Calamity Loan"},
				{ID: "emergency_loan", Label: "Emergency Loan"},
				{ID: "consoloan", Label: "Consoloan"},
			},
		},
		{
			ID: "membership", Label: "Membership / ID / Inquiries", Icon: "🪪", Short: "Members", AvgTime: 8, Cap: 60,
			Services: []Service{
				{ID: "new_member", Label: "New Registration"},
				{ID: "umid", Label: "UMID Enrollment / Release"},
				{ID: "e1_update", Label: "E-1 / E-4 Update"},
				{ID: "inquiry", Label: "General Inquiry"},
				{ID: "member_record", Label: "Member Records"},
			},
		},
		{
			ID: "acop", Label: "ACOP", Icon: "📋", Short: "ACOP", AvgTime: 10, Cap: 30,
			Services: []Service{
				{ID: "acop_filing", Label: "ACOP Filing"},
				{ID: "acop_followup", Label: "ACOP Follow-up"},
			},
		},
		{
			ID: "payments", Label: "Payments", Icon: "💳", Short: "Payments", AvgTime: 7, Cap: 70,
			Services: []Service{
				{ID: "pay_contribution", Label: "Contribution Payment"},
				{ID: "pay_loan", Label: "Loan Amortization"},
				{ID: "pay_others", Label: "Other Payments / PRN"},
			},
		},
		{
			ID: "employers", Label: "Employers", Icon: "🏢", Short: "Employers", AvgTime: 12, Cap: 30,
			Services: []Service{
				{ID: "er_registration", Label: "Employer Registration"},
				{ID: "er_reporting", Label: "Collection / Reporting"},
				{ID: "er_inquiry", Label: "Employer Inquiry"},
				{ID: "er_certificate", Label: "Employer Certification"},
			},
		},
	}
}

// FindCategory returns the catalog entry with the given id, or nil.
func FindCategory(cats []Category, id string) *Category {
	for i := range cats {
		if cats[i].ID == id {
			return &cats[i]
		}
	}
	return nil
}
