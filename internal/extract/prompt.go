package extract

import (
	"fmt"
	"strings"

	"github.com/haysc/careerscan/internal/types"
)

// extractionSchemaJSON is the exact output structure the service is asked to
// produce. It mirrors types.Extraction; every top-level field is optional.
const extractionSchemaJSON = `{
  "work_experience": [
    {
      "company": "Company Name",
      "role": "Job Title",
      "start_date": "YYYY-MM",
      "end_date": "YYYY-MM or null",
      "is_current": false,
      "location": "City, State/Country",
      "responsibilities": ["responsibility 1", "responsibility 2"],
      "achievements": ["achievement 1", "achievement 2"],
      "technologies": ["tech1", "tech2"]
    }
  ],
  "education": [
    {
      "degree": "Degree Name",
      "field_of_study": "Major/Field",
      "school": "School Name",
      "location": "City, State/Country",
      "start_date": "YYYY-MM",
      "end_date": "YYYY-MM",
      "gpa": "3.8",
      "honors": ["honor1"],
      "relevant_coursework": ["course1"]
    }
  ],
  "skills": {
    "technical": {
      "programming_languages": [],
      "frameworks": [],
      "databases": [],
      "cloud_platforms": [],
      "tools": [],
      "concepts": []
    },
    "soft_skills": [],
    "languages": [
      {"language": "English", "proficiency": "Native"}
    ],
    "certifications": [
      {
        "name": "Cert Name",
        "issuer": "Issuer",
        "date_obtained": "YYYY-MM",
        "expiry_date": "YYYY-MM or null"
      }
    ]
  },
  "projects": [
    {
      "name": "Project Name",
      "description": "Brief description",
      "role": "Your role",
      "start_date": "YYYY-MM",
      "end_date": "YYYY-MM or null",
      "technologies": ["tech1"],
      "outcomes": ["outcome1"],
      "github_url": "url or null",
      "demo_url": "url or null"
    }
  ],
  "job_applications": [
    {
      "company": "Company Name",
      "position": "Position Title",
      "date_applied": "YYYY-MM-DD",
      "status": "Applied/Interview/Offer/Rejected",
      "job_url": "url or null",
      "application_deadline": "YYYY-MM-DD or null",
      "notes": "Any notes"
    }
  ],
  "personal_info": {
    "name": "Full Name or null",
    "email": "email or null",
    "phone": "phone or null",
    "location": "City, State or null",
    "linkedin": "url or null",
    "github": "url or null",
    "portfolio": "url or null"
  }
}`

// BuildExtractionPrompt constructs the service prompt for one document. The
// category hint steers the model toward the fields that document type usually
// carries.
func BuildExtractionPrompt(text string, hint types.DocumentCategory) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Analyze this %s and extract structured career information.\n\n", hint))
	sb.WriteString("Instructions:\n")
	sb.WriteString("- Extract ALL work experience with complete details (company, role, dates, responsibilities, achievements, technologies)\n")
	sb.WriteString("- Identify technical and soft skills\n")
	sb.WriteString("- Capture education with full details (degree, school, field, dates, gpa, honors)\n")
	sb.WriteString("- Find projects if mentioned (name, description, technologies, outcomes)\n")
	sb.WriteString("- For job applications, extract company, position, date applied, status\n")
	sb.WriteString("- For dates, use YYYY-MM format if month is known, otherwise YYYY\n")
	sb.WriteString("- For current positions, use null for end_date and set is_current: true\n")
	sb.WriteString("- If information is not present in the document, omit that field rather than guessing\n\n")

	sb.WriteString("Document text:\n")
	sb.WriteString(text)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact schema (omit empty arrays):\n")
	sb.WriteString(extractionSchemaJSON)
	sb.WriteString("\n\nRemember: Return ONLY the JSON object, no additional text or markdown formatting.")

	return sb.String()
}
