package taxonomy

// seedPrinciples defines the principle catalog, IEEE EAD themes plus
// Embedded-Ethics-style additions. Slice order is the canonical order.
var seedPrinciples = []Principle{
	{
		ID:          "human_rights",
		Description: "Respect, promote, and protect internationally recognized human rights.",
	},
	{
		ID:          "well_being",
		Description: "Prioritize human well-being as a primary success criterion.",
	},
	{
		ID:          "data_agency",
		Description: "Give people control and meaningful agency over their data.",
	},
	{
		ID:          "effectiveness",
		Description: "Ensure systems actually work as intended and are reliable.",
	},
	{
		ID:          "transparency",
		Description: "Make systems understandable and explainable to affected parties.",
	},
	{
		ID:          "accountability",
		Description: "Ensure humans are accountable for outcomes of AI systems.",
	},
	{
		ID:          "awareness_of_misuse",
		Description: "Anticipate and mitigate potential misuse of the system.",
	},
	{
		ID:          "competence",
		Description: "Require appropriate expertise and due care in development and deployment.",
	},
	{
		ID:          "privacy",
		Description: "Protect privacy and sensitive information of users and stakeholders.",
	},
	{
		ID:          "fairness_non_discrimination",
		Description: "Avoid unjust bias and discrimination across groups.",
	},
	{
		ID:          "democratic_values",
		Description: "Respect democratic values like free expression and equal participation.",
	},
	{
		ID:          "manipulation_autonomy",
		Description: "Avoid manipulative designs that undermine user autonomy or consent.",
	},
}
