package skills

// Term is a canonical vocabulary entry and the aliases it is recognized by.
// Exact terms are matched case-sensitively (used for short names that collide with English words).
type Term struct {
	Name    string
	Aliases []string
	Exact   bool
}

// Skill categories.
const (
	CategoryProgramming = "programming"
	CategoryWeb         = "web"
	CategoryCloud       = "cloud"
	CategoryDevOps      = "devops"
	CategoryData        = "data"
	CategoryDatabases   = "databases"
	CategoryAIML        = "ai_ml"
	CategoryMobile      = "mobile"
	CategorySecurity    = "security"
	CategoryManagement  = "management"
)

// Vocabulary maps each category to its curated terms. A skill may appear in multiple categories.
var Vocabulary = map[string][]Term{
	CategoryProgramming: {
		{Name: "Python"},
		{Name: "Java"},
		{Name: "JavaScript", Aliases: []string{"js"}},
		{Name: "TypeScript", Aliases: []string{"ts"}},
		{Name: "Go", Aliases: []string{"golang"}, Exact: true},
		{Name: "Rust"},
		{Name: "C++"},
		{Name: "C#"},
		{Name: "Ruby"},
		{Name: "PHP"},
		{Name: "Scala"},
		{Name: "Kotlin"},
		{Name: "Swift"},
		{Name: "SQL"},
		{Name: "Bash", Aliases: []string{"shell scripting"}},
	},
	CategoryWeb: {
		{Name: "React", Aliases: []string{"react.js", "reactjs"}},
		{Name: "Angular"},
		{Name: "Vue", Aliases: []string{"vue.js", "vuejs"}},
		{Name: "Node.js", Aliases: []string{"nodejs", "node"}},
		{Name: "Django"},
		{Name: "Flask"},
		{Name: "Spring", Aliases: []string{"spring boot"}},
		{Name: "GraphQL"},
		{Name: "REST", Aliases: []string{"rest api", "restful"}},
		{Name: "HTML"},
		{Name: "CSS"},
		{Name: "JavaScript", Aliases: []string{"js"}},
		{Name: "TypeScript", Aliases: []string{"ts"}},
	},
	CategoryCloud: {
		{Name: "AWS", Aliases: []string{"amazon web services"}},
		{Name: "Azure", Aliases: []string{"microsoft azure"}},
		{Name: "GCP", Aliases: []string{"google cloud", "google cloud platform"}},
		{Name: "Lambda"},
		{Name: "S3"},
		{Name: "EC2"},
		{Name: "Serverless"},
	},
	CategoryDevOps: {
		{Name: "Docker"},
		{Name: "Kubernetes", Aliases: []string{"k8s"}},
		{Name: "Terraform"},
		{Name: "Ansible"},
		{Name: "Jenkins"},
		{Name: "CI/CD", Aliases: []string{"continuous integration", "continuous delivery"}},
		{Name: "GitHub Actions"},
		{Name: "Prometheus"},
		{Name: "Grafana"},
		{Name: "Linux"},
		{Name: "Git"},
	},
	CategoryData: {
		{Name: "Spark", Aliases: []string{"apache spark", "pyspark"}},
		{Name: "Hadoop"},
		{Name: "Kafka", Aliases: []string{"apache kafka"}},
		{Name: "Airflow", Aliases: []string{"apache airflow"}},
		{Name: "ETL"},
		{Name: "Pandas"},
		{Name: "NumPy"},
		{Name: "Tableau"},
		{Name: "Power BI"},
		{Name: "dbt"},
		{Name: "Snowflake"},
		{Name: "SQL"},
	},
	CategoryDatabases: {
		{Name: "PostgreSQL", Aliases: []string{"postgres"}},
		{Name: "MySQL"},
		{Name: "MongoDB", Aliases: []string{"mongo"}},
		{Name: "Redis"},
		{Name: "Elasticsearch"},
		{Name: "Cassandra"},
		{Name: "DynamoDB"},
		{Name: "SQL"},
	},
	CategoryAIML: {
		{Name: "Machine Learning", Aliases: []string{"ml"}},
		{Name: "Deep Learning"},
		{Name: "TensorFlow"},
		{Name: "PyTorch"},
		{Name: "scikit-learn", Aliases: []string{"sklearn"}},
		{Name: "NLP", Aliases: []string{"natural language processing"}},
		{Name: "Computer Vision"},
		{Name: "LLM", Aliases: []string{"large language models"}},
		{Name: "MLOps"},
		{Name: "Pandas"},
		{Name: "NumPy"},
	},
	CategoryMobile: {
		{Name: "iOS"},
		{Name: "Android"},
		{Name: "React Native"},
		{Name: "Flutter"},
		{Name: "Swift"},
		{Name: "Kotlin"},
	},
	CategorySecurity: {
		{Name: "OAuth"},
		{Name: "IAM"},
		{Name: "Penetration Testing"},
		{Name: "SIEM"},
		{Name: "Cryptography"},
	},
	CategoryManagement: {
		{Name: "Agile"},
		{Name: "Scrum"},
		{Name: "Project Management"},
		{Name: "Stakeholder Management"},
		{Name: "Team Leadership", Aliases: []string{"people management"}},
		{Name: "Mentoring", Aliases: []string{"mentorship"}},
	},
}

// Certifications lists recognized certification names.
var Certifications = []Term{
	{Name: "AWS Certified Solutions Architect"},
	{Name: "AWS Certified Developer"},
	{Name: "AWS Certified Cloud Practitioner"},
	{Name: "Certified Kubernetes Administrator", Aliases: []string{"cka"}},
	{Name: "Certified Kubernetes Application Developer", Aliases: []string{"ckad"}},
	{Name: "Google Cloud Professional", Aliases: []string{"gcp professional"}},
	{Name: "Azure Administrator"},
	{Name: "Azure Fundamentals"},
	{Name: "Terraform Associate"},
	{Name: "PMP", Aliases: []string{"project management professional"}},
	{Name: "CISSP"},
	{Name: "CompTIA Security+", Aliases: []string{"security+"}},
	{Name: "Certified Scrum Master", Aliases: []string{"csm"}},
	{Name: "CFA"},
	{Name: "CPA"},
}
