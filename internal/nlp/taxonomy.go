package nlp

import (
	"sort"
	"strings"
)

// SkillCategory is a group of related skills within one industry.
type SkillCategory struct {
	Domain   string
	Industry string
	Skills   []string
}

// SkillsTaxonomy is the categorized skills database, organized by
// industry and domain. Used to identify which industry a resume or job
// description belongs to and to match skills against a known vocabulary.
var SkillsTaxonomy = []SkillCategory{
	{
		Domain:   "programming languages",
		Industry: "technology",
		Skills: []string{
			"javascript", "typescript", "python", "java", "c++", "c#", "go",
			"rust", "ruby", "php", "swift", "kotlin", "scala", "r",
			"matlab", "perl", "haskell", "elixir", "dart", "lua",
			"objective-c", "assembly", "sql", "html", "css",
		},
	},
	{
		Domain:   "frontend development",
		Industry: "technology",
		Skills: []string{
			"react", "angular", "vue", "svelte", "next.js", "nuxt",
			"tailwind css", "sass", "css modules", "webpack", "vite",
			"storybook", "jest", "cypress", "playwright",
			"responsive design", "web accessibility", "wcag",
			"single page application", "progressive web app", "pwa",
		},
	},
	{
		Domain:   "backend development",
		Industry: "technology",
		Skills: []string{
			"node.js", "express", "django", "flask", "fastapi",
			"spring boot", "ruby on rails", ".net", "laravel",
			"rest api", "graphql", "grpc", "websockets",
			"microservices", "serverless", "api gateway",
			"message queue", "rabbitmq", "kafka", "redis",
		},
	},
	{
		Domain:   "databases",
		Industry: "technology",
		Skills: []string{
			"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
			"dynamodb", "cassandra", "sqlite", "oracle", "sql server",
			"neo4j", "firebase", "supabase", "prisma", "sequelize",
			"database design", "data modeling", "query optimization",
		},
	},
	{
		Domain:   "cloud and devops",
		Industry: "technology",
		Skills: []string{
			"aws", "google cloud platform", "microsoft azure", "docker",
			"kubernetes", "terraform", "ansible", "jenkins", "github actions",
			"gitlab ci", "circleci", "cloudflare", "vercel", "netlify",
			"linux", "nginx", "monitoring", "grafana", "prometheus",
			"datadog", "ci/cd", "infrastructure as code", "site reliability",
		},
	},
	{
		Domain:   "data science and ml",
		Industry: "technology",
		Skills: []string{
			"machine learning", "deep learning", "natural language processing",
			"computer vision", "tensorflow", "pytorch", "scikit-learn",
			"pandas", "numpy", "matplotlib", "jupyter", "spark",
			"hadoop", "airflow", "mlflow", "data pipeline",
			"statistical analysis", "a/b testing", "regression",
			"classification", "neural networks", "transformers",
			"large language models", "generative ai",
		},
	},
	{
		Domain:   "mobile development",
		Industry: "technology",
		Skills: []string{
			"ios", "android", "react native", "flutter", "swift",
			"kotlin", "xcode", "android studio", "mobile ui",
			"app store", "google play", "push notifications",
			"mobile testing", "responsive design",
		},
	},
	{
		Domain:   "security",
		Industry: "technology",
		Skills: []string{
			"cybersecurity", "penetration testing", "vulnerability assessment",
			"soc", "siem", "encryption", "oauth", "jwt", "ssl/tls",
			"firewall", "intrusion detection", "incident response",
			"compliance", "gdpr", "hipaa", "pci dss", "iso 27001",
			"owasp", "security audit",
		},
	},
	{
		Domain:   "financial analysis",
		Industry: "finance",
		Skills: []string{
			"financial modeling", "valuation", "dcf analysis",
			"comparable analysis", "financial statements",
			"balance sheet", "income statement", "cash flow",
			"budgeting", "forecasting", "variance analysis",
			"financial reporting", "gaap", "ifrs",
			"bloomberg terminal", "capital iq", "factset",
		},
	},
	{
		Domain:   "investment banking",
		Industry: "finance",
		Skills: []string{
			"mergers and acquisitions", "initial public offering",
			"debt financing", "equity financing", "leveraged buyout",
			"pitch books", "deal execution", "due diligence",
			"private equity", "venture capital", "hedge fund",
			"portfolio management", "asset management",
			"risk management", "derivatives", "options pricing",
		},
	},
	{
		Domain:   "accounting",
		Industry: "finance",
		Skills: []string{
			"accounts payable", "accounts receivable", "general ledger",
			"journal entries", "reconciliation", "tax preparation",
			"audit", "internal controls", "sarbanes-oxley", "sox compliance",
			"quickbooks", "sap", "oracle financials", "netsuite",
			"cpa", "cma", "cost accounting", "payroll",
		},
	},
	{
		Domain:   "clinical",
		Industry: "healthcare",
		Skills: []string{
			"patient care", "clinical assessment", "treatment planning",
			"medication administration", "vital signs", "phlebotomy",
			"ehr", "epic", "cerner", "meditech",
			"hipaa compliance", "infection control", "patient safety",
			"bls", "acls", "pals", "triage",
			"nursing", "physician", "surgery", "diagnostics",
		},
	},
	{
		Domain:   "pharmaceutical",
		Industry: "healthcare",
		Skills: []string{
			"clinical trials", "drug development", "regulatory affairs",
			"fda submission", "gmp", "pharmacovigilance",
			"biostatistics", "clinical data management", "sas",
			"medical writing", "protocol development", "irb",
			"phase i", "phase ii", "phase iii", "nda", "ind",
		},
	},
	{
		Domain:   "digital marketing",
		Industry: "marketing",
		Skills: []string{
			"seo", "sem", "ppc", "google ads", "facebook ads",
			"social media marketing", "content marketing",
			"email marketing", "marketing automation", "hubspot",
			"mailchimp", "google analytics", "google tag manager",
			"conversion rate optimization", "landing page optimization",
			"copywriting", "content strategy", "brand strategy",
		},
	},
	{
		Domain:   "product marketing",
		Industry: "marketing",
		Skills: []string{
			"go-to-market strategy", "competitive analysis",
			"market research", "customer segmentation", "positioning",
			"messaging", "product launch", "sales enablement",
			"buyer persona", "customer journey", "demand generation",
			"lead generation", "marketing qualified leads",
		},
	},
	{
		Domain:   "sales",
		Industry: "sales",
		Skills: []string{
			"business development", "account management", "lead generation",
			"pipeline management", "quota attainment", "cold calling",
			"consultative selling", "solution selling", "saas sales",
			"enterprise sales", "inside sales", "field sales",
			"salesforce", "hubspot crm", "negotiation",
			"contract negotiation", "territory management",
			"upselling", "cross-selling", "customer retention",
		},
	},
	{
		Domain:   "operations",
		Industry: "operations",
		Skills: []string{
			"supply chain management", "logistics", "procurement",
			"inventory management", "warehouse management",
			"lean manufacturing", "six sigma", "kaizen",
			"process improvement", "quality assurance", "quality control",
			"vendor management", "contract management",
			"erp", "sap", "oracle", "demand planning",
			"capacity planning", "production scheduling",
		},
	},
	{
		Domain:   "human resources",
		Industry: "hr",
		Skills: []string{
			"recruiting", "talent acquisition", "interviewing",
			"onboarding", "employee relations", "performance management",
			"compensation and benefits", "payroll", "hris",
			"workday", "bamboohr", "successfactors",
			"diversity and inclusion", "employee engagement",
			"training and development", "organizational development",
			"labor law", "compliance", "shrm-cp", "phr",
		},
	},
	{
		Domain:   "legal",
		Industry: "legal",
		Skills: []string{
			"contract drafting", "contract review", "legal research",
			"litigation", "corporate law", "intellectual property",
			"regulatory compliance", "due diligence", "legal writing",
			"westlaw", "lexisnexis", "case management",
			"mediation", "arbitration", "discovery",
			"gdpr", "ccpa", "data privacy", "employment law",
		},
	},
	{
		Domain:   "education",
		Industry: "education",
		Skills: []string{
			"curriculum development", "lesson planning", "instruction",
			"classroom management", "student assessment", "differentiated instruction",
			"special education", "iep", "educational technology",
			"learning management system", "blackboard", "canvas",
			"tutoring", "mentoring", "academic advising",
		},
	},
	{
		Domain:   "design",
		Industry: "design",
		Skills: []string{
			"ui design", "ux design", "user research", "wireframing",
			"prototyping", "figma", "sketch", "adobe xd",
			"adobe photoshop", "adobe illustrator", "adobe indesign",
			"design systems", "interaction design", "visual design",
			"typography", "color theory", "usability testing",
			"information architecture", "user flow", "persona development",
		},
	},
}

// IndustryMatch counts how many known skills of an industry appear in a text.
type IndustryMatch struct {
	Industry   string
	MatchCount int
}

// DetectIndustry returns industries ranked by how many of their known
// skills appear in the text.
func DetectIndustry(text string) []IndustryMatch {
	lower := strings.ToLower(text)
	counts := make(map[string]int)
	var order []string

	for _, cat := range SkillsTaxonomy {
		n := 0
		for _, skill := range cat.Skills {
			if strings.Contains(lower, skill) {
				n++
			}
		}
		if n > 0 {
			if counts[cat.Industry] == 0 {
				order = append(order, cat.Industry)
			}
			counts[cat.Industry] += n
		}
	}

	matches := make([]IndustryMatch, 0, len(order))
	for _, industry := range order {
		matches = append(matches, IndustryMatch{Industry: industry, MatchCount: counts[industry]})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].MatchCount > matches[j].MatchCount })
	return matches
}

// IndustrySkills returns all known skills for an industry.
func IndustrySkills(industry string) []string {
	var skills []string
	for _, cat := range SkillsTaxonomy {
		if cat.Industry == industry {
			skills = append(skills, cat.Skills...)
		}
	}
	return skills
}

// SkillDomain returns the domain/category a skill belongs to, or "".
func SkillDomain(skill string) string {
	lower := strings.ToLower(skill)
	for _, cat := range SkillsTaxonomy {
		for _, s := range cat.Skills {
			if s == lower {
				return cat.Domain
			}
		}
	}
	return ""
}
