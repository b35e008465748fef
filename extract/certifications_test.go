package extract

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirerank/backend/models"
)

func TestExtractCertifications_NamedPatterns(t *testing.T) {
	text := `Certifications
AWS Certified Solutions Architect, issued by Amazon Web Services (2021)
CompTIA Security+
CISSP 2019`

	certs := ExtractCertifications(text)
	require.Len(t, certs, 3)

	assert.Equal(t, "AWS Certified Solutions Architect", certs[0].Name)
	assert.Equal(t, "Amazon Web Services", certs[0].Issuer)
	assert.Equal(t, "2021", certs[0].Year)

	assert.Equal(t, "CompTIA Security+", certs[1].Name)
	assert.Equal(t, models.NotSpecified, certs[1].Issuer)

	assert.Equal(t, "CISSP", certs[2].Name)
	assert.Equal(t, "2019", certs[2].Year)
}

func TestExtractCertifications_KubernetesAndGoogle(t *testing.T) {
	text := `Certifications
Certified Kubernetes Administrator, from The Linux Foundation
Google Cloud Professional Data Engineer 2022`

	certs := ExtractCertifications(text)
	require.Len(t, certs, 2)
	assert.Equal(t, "Certified Kubernetes Administrator", certs[0].Name)
	assert.Equal(t, "The Linux Foundation", certs[0].Issuer)
	assert.Equal(t, "Google Cloud Professional Data Engineer", certs[1].Name)
}

func TestExtractCertifications_Deduplicates(t *testing.T) {
	text := `Certifications
CCNA
ccna`

	certs := ExtractCertifications(text)
	assert.Len(t, certs, 1)
}

func TestExtractCertifications_CapsAtTen(t *testing.T) {
	text := "Certifications\n"
	for i := 0; i < 15; i++ {
		text += fmt.Sprintf("Oracle Certified Professional Level%c\n", 'A'+i)
	}

	certs := ExtractCertifications(text)
	assert.Len(t, certs, 10)
}

func TestExtractCertifications_LooseFallback(t *testing.T) {
	text := "Holds a scrum master certification from the local chapter"

	certs := ExtractCertifications(text)
	require.Len(t, certs, 1)
	assert.Contains(t, certs[0].Name, "scrum master certification")
}

func TestExtractCertifications_Empty(t *testing.T) {
	assert.Empty(t, ExtractCertifications("no credentials listed"))
}
