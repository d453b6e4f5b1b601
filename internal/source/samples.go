package source

import (
	"context"
	"fmt"
	"hash/fnv"
)

// StaticFetcher serves a fixed set of listings. It backs the bundled sample
// catalogue so the feed is never empty, even when every remote source fails.
type StaticFetcher struct {
	name string
	jobs []Job
}

// NewStaticFetcher creates a fetcher that always returns jobs.
func NewStaticFetcher(name string, jobs []Job) *StaticFetcher {
	return &StaticFetcher{name: name, jobs: jobs}
}

func (f *StaticFetcher) Name() string { return f.name }

func (f *StaticFetcher) FetchJobs(_ context.Context) ([]Job, error) {
	out := make([]Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

// sampleID derives a stable external ID from title and company.
func sampleID(prefix, title, company string) string {
	h := fnv.New32a()
	h.Write([]byte(title + company))
	return fmt.Sprintf("%s_%x", prefix, h.Sum32())
}

// SampleJobs returns the curated sample listings bundled with the service.
func SampleJobs() []Job {
	jobs := []Job{
		{
			Title:       "Senior Cloud Engineer - AWS Specialist",
			Company:     "Amazon Web Services",
			Location:    "Seattle, WA or Remote",
			Description: "Join AWS as a Senior Cloud Engineer. Work with cutting-edge cloud technologies and help enterprise customers migrate to AWS. Requirements: 5+ years AWS experience, Kubernetes, Terraform, Python, and infrastructure as code.",
			ApplyURL:    "https://aws.amazon.com/careers/",
			Salary:      "$150,000 - $200,000",
			Level:       "Senior",
		},
		{
			Title:       "Azure DevOps Engineer",
			Company:     "Microsoft",
			Location:    "Redmond, WA or Remote",
			Description: "Azure DevOps Engineer role focusing on CI/CD pipelines, infrastructure as code, and cloud automation. Azure certifications preferred. Experience with Azure DevOps, ARM templates, and containerization required.",
			ApplyURL:    "https://careers.microsoft.com/",
			Salary:      "$130,000 - $170,000",
			Level:       "Senior",
		},
		{
			Title:       "Kubernetes Platform Engineer",
			Company:     "Google Cloud",
			Location:    "Remote",
			Description: "Build and maintain Kubernetes platforms for GCP customers. Deep Kubernetes experience required with GKE expertise. Skills: Kubernetes, Docker, Go, Python, Terraform, and cloud networking.",
			ApplyURL:    "https://careers.google.com/",
			Salary:      "$140,000 - $190,000",
			Level:       "Senior",
		},
		{
			Title:       "DevOps Engineer - Remote",
			Company:     "StartupXYZ",
			Location:    "Remote",
			Description: "Fast-growing startup looking for DevOps Engineer to build and scale our infrastructure. Tech stack: AWS, Docker, Kubernetes, Jenkins, Python, and Node.js.",
			ApplyURL:    "https://startupxyz.com/careers",
			Salary:      "$100,000 - $140,000",
			Level:       "Mid Level",
		},
		{
			Title:       "Site Reliability Engineer",
			Company:     "Netflix",
			Location:    "Remote",
			Description: "SRE role focusing on reliability, performance, and automation of our streaming platform. Requirements: 5+ years SRE experience, Kubernetes, AWS, and monitoring tools.",
			ApplyURL:    "https://jobs.netflix.com/",
			Salary:      "$180,000 - $220,000",
			Level:       "Senior",
		},
		{
			Title:       "Cloud Security Engineer",
			Company:     "SecurityFirst Inc",
			Location:    "Remote",
			Description: "Cloud security specialist focusing on AWS/Azure security, compliance, and infrastructure hardening. CISSP or CCSP certification preferred.",
			ApplyURL:    "https://securityfirst.com/careers",
			Salary:      "$130,000 - $160,000",
			Level:       "Senior",
		},
		{
			Title:       "Senior DevOps Engineer - Remote",
			Company:     "TechCorp Inc",
			Location:    "Remote",
			Description: "Senior DevOps role focusing on AWS, Kubernetes, and infrastructure automation. 5+ years experience required.",
			ApplyURL:    "https://weworkremotely.com/remote-jobs/senior-devops-engineer",
			Salary:      "$130,000 - $160,000",
			Level:       "Senior",
		},
		{
			Title:       "Cloud Infrastructure Architect",
			Company:     "CloudSolutions Ltd",
			Location:    "Remote",
			Description: "Design and implement cloud infrastructure solutions for enterprise clients using multi-cloud strategies.",
			ApplyURL:    "https://weworkremotely.com/remote-jobs/cloud-architect",
			Salary:      "$140,000 - $180,000",
			Level:       "Senior",
		},
	}

	for i := range jobs {
		jobs[i].ExternalID = sampleID("samples", jobs[i].Title, jobs[i].Company)
		jobs[i].JobType = "Full-time"
		jobs[i].SalaryMin, jobs[i].SalaryMax = ParseSalaryRange(jobs[i].Salary)
	}
	return jobs
}
