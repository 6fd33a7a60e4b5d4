package domain

// MenuItem is one sidebar entry. Icon names the icon in the front-end set.
type MenuItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	Icon  string `json:"icon"`
}

// Welcome is the banner shown at the top of a role dashboard.
type Welcome struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	BadgeLabel string `json:"badgeLabel,omitempty"`
	BadgeText  string `json:"badgeText,omitempty"`
	Gradient   string `json:"gradient"`
}

// DashboardConfig is the per-role chrome: menu, banner and icons.
type DashboardConfig struct {
	Role           Role       `json:"role"`
	MenuItems      []MenuItem `json:"menuItems"`
	Welcome        Welcome    `json:"welcome"`
	BadgeIcon      string     `json:"badgeIcon"`
	DecorativeIcon string     `json:"decorativeIcon"`
}

// HasPath reports whether href is one of the menu destinations.
func (d DashboardConfig) HasPath(href string) bool {
	for _, m := range d.MenuItems {
		if m.Href == href {
			return true
		}
	}
	return false
}

// Label returns the menu label for href, or "" when it is not in the menu.
func (d DashboardConfig) Label(href string) string {
	for _, m := range d.MenuItems {
		if m.Href == href {
			return m.Label
		}
	}
	return ""
}

// DashboardFor returns the configuration of role. Unknown roles get the
// unassigned configuration.
func DashboardFor(role Role) DashboardConfig {
	if cfg, ok := dashboards[role]; ok {
		return cfg
	}
	return dashboards[RoleUnassigned]
}

var dashboards = map[Role]DashboardConfig{
	RoleAdmin: {
		Role: RoleAdmin,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/admin/dashboard", Icon: "LayoutDashboard"},
			{Label: "Users", Href: "/admin/users", Icon: "Users"},
			{Label: "Jobs", Href: "/admin/jobs", Icon: "Briefcase"},
			{Label: "Reports", Href: "/admin/reports", Icon: "FileText"},
			{Label: "Analytics", Href: "/admin/analytics", Icon: "BarChart3"},
			{Label: "Settings", Href: "/admin/settings", Icon: "Settings"},
		},
		Welcome: Welcome{
			Title:      "Admin Control Center",
			Subtitle:   "You have 8 pending approvals and 3 system alerts requiring attention",
			BadgeLabel: "System Administrator",
			Gradient:   "bg-gradient-to-br from-indigo-900 via-blue-900 to-indigo-900",
		},
		BadgeIcon:      "Shield",
		DecorativeIcon: "Shield",
	},
	RoleEmployer: {
		Role: RoleEmployer,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/employer/dashboard", Icon: "LayoutDashboard"},
			{Label: "Jobs", Href: "/employer/jobs", Icon: "Briefcase"},
			{Label: "Workers", Href: "/employer/workers", Icon: "Users"},
			{Label: "Clients", Href: "/employer/clients", Icon: "UserCircle2"},
			{Label: "Applications", Href: "/employer/applications", Icon: "FileText"},
			{Label: "Messages", Href: "/employer/messages", Icon: "MessageSquare"},
			{Label: "Settings", Href: "/employer/settings", Icon: "Settings"},
		},
		Welcome: Welcome{
			Title:      "Welcome back, Sarah! 👋",
			Subtitle:   "You have 12 active jobs and 8 pending applications to review",
			BadgeLabel: "Verified Employer",
			BadgeText:  "Premium",
			Gradient:   "bg-gradient-to-r from-indigo-600 via-blue-600 to-indigo-700",
		},
		BadgeIcon:      "Building2",
		DecorativeIcon: "Building2",
	},
	RoleWorker: {
		Role: RoleWorker,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/worker/dashboard", Icon: "LayoutDashboard"},
			{Label: "Find Jobs", Href: "/worker/jobs", Icon: "Briefcase"},
			{Label: "My Applications", Href: "/worker/applications", Icon: "FileText"},
			{Label: "My Contracts", Href: "/worker/contracts", Icon: "CheckCircle2"},
			{Label: "Messages", Href: "/worker/messages", Icon: "MessageSquare"},
			{Label: "Settings", Href: "/worker/settings", Icon: "Settings"},
		},
		Welcome: Welcome{
			Title:      "Find Your Next Opportunity! 🚀",
			Subtitle:   "You have 3 new job matches and 2 interview requests waiting",
			BadgeLabel: "Top Rated Worker",
			Gradient:   "bg-gradient-to-r from-blue-600 via-indigo-600 to-blue-700",
		},
		BadgeIcon:      "Wrench",
		DecorativeIcon: "Wrench",
	},
	RoleClient: {
		Role: RoleClient,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/client/dashboard", Icon: "LayoutDashboard"},
			{Label: "My Requests", Href: "/client/requests", Icon: "Briefcase"},
			{Label: "Service Providers", Href: "/client/providers", Icon: "Users"},
			{Label: "Messages", Href: "/client/messages", Icon: "MessageSquare"},
			{Label: "Invoices", Href: "/client/invoices", Icon: "FileText"},
			{Label: "Payments", Href: "/client/payments", Icon: "CreditCard"},
		},
		Welcome: Welcome{
			Title:      "Your Perfect Service Awaits! ✨",
			Subtitle:   "You have 2 pending requests and 3 new provider recommendations",
			BadgeLabel: "Verified Client",
			BadgeText:  "Premium Member",
			Gradient:   "bg-gradient-to-r from-blue-700 via-indigo-600 to-blue-600",
		},
		BadgeIcon:      "CheckCircle2",
		DecorativeIcon: "Users",
	},
	RolePartner: {
		Role: RolePartner,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/partner/dashboard", Icon: "LayoutDashboard"},
			{Label: "Contracts", Href: "/partner/contracts", Icon: "FileText"},
			{Label: "Workers", Href: "/partner/workers", Icon: "Users"},
			{Label: "Clients", Href: "/partner/clients", Icon: "UsersIcon"},
			{Label: "Invoices", Href: "/partner/invoices", Icon: "CreditCard"},
			{Label: "Settings", Href: "/partner/settings", Icon: "Settings"},
		},
		Welcome: Welcome{
			Title:      "Partner Excellence Dashboard",
			Subtitle:   "You have 8 active contracts worth $45.2K and 5 new opportunities",
			BadgeLabel: "Elite Partner",
			Gradient:   "bg-gradient-to-r from-indigo-700 via-blue-600 to-indigo-600",
		},
		BadgeIcon:      "Building2",
		DecorativeIcon: "UsersIcon",
	},
	RoleInspector: {
		Role: RoleInspector,
		MenuItems: []MenuItem{
			{Label: "Dashboard", Href: "/inspector/dashboard", Icon: "LayoutDashboard"},
			{Label: "Cases", Href: "/inspector/cases", Icon: "ClipboardCheck"},
			{Label: "Inspections", Href: "/inspector/inspections", Icon: "Calendar"},
			{Label: "Reports", Href: "/inspector/reports", Icon: "FileText"},
			{Label: "Messages", Href: "/inspector/messages", Icon: "MessageSquare"},
			{Label: "Settings", Href: "/inspector/settings", Icon: "Settings"},
		},
		Welcome: Welcome{
			Title:      "Inspector Control Panel",
			Subtitle:   "You have 4 pending inspections and 2 unresolved cases requiring review",
			BadgeLabel: "Compliance Officer",
			Gradient:   "bg-gradient-to-r from-blue-700 via-indigo-700 to-purple-700",
		},
		BadgeIcon:      "ClipboardCheck",
		DecorativeIcon: "ClipboardCheck",
	},
	RoleUnassigned: {
		Role: RoleUnassigned,
		MenuItems: []MenuItem{
			{Label: "Complete Profile", Href: "/auth/complete-profile", Icon: "Users"},
		},
		Welcome: Welcome{
			Title:      "Welcome to Jobzen",
			Subtitle:   "Please complete your profile to get started",
			BadgeLabel: "New User",
			Gradient:   "from-gray-500 via-gray-600 to-gray-700",
		},
		BadgeIcon:      "Users",
		DecorativeIcon: "Users",
	},
}
