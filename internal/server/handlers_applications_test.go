package server

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

func TestSubmitApplication(t *testing.T) {
	env := newTestEnv(t)
	jobID := seedJob(t, env, db.JobPublished)
	_, cookie := env.seedCandidate(t, "ada@example.com")

	body := fmt.Sprintf(`{"jobId": "%s", "coverLetter": "Hello"}`, jobID)

	// Candidate session required.
	rec := env.do(t, httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
	req.AddCookie(cookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody[map[string]db.Application](t, rec)
	assert.Equal(t, "APPLIED", created["application"].Status)

	// Same candidate, same job: conflict, first application untouched.
	req = httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
	req.AddCookie(cookie)
	rec = env.do(t, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, env.store.applications, 1)
}

func TestSubmitApplication_UnpublishedJob(t *testing.T) {
	env := newTestEnv(t)
	draftID := seedJob(t, env, db.JobDraft)
	_, cookie := env.seedCandidate(t, "ada@example.com")

	body := fmt.Sprintf(`{"jobId": "%s"}`, draftID)
	req := httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
	req.AddCookie(cookie)
	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitApplication_RedeemsReferral(t *testing.T) {
	env := newTestEnv(t)
	jobID := seedJob(t, env, db.JobPublished)
	referrer, referrerCookie := env.seedCandidate(t, "referrer@example.com")
	_, applicantCookie := env.seedCandidate(t, "applicant@example.com")

	// Referrer mints a code.
	req := httptest.NewRequest("POST", "/api/careers/referrals", nil)
	req.AddCookie(referrerCookie)
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	code := decodeBody[map[string]string](t, rec)["code"]
	require.NotEmpty(t, code)

	// Applicant applies with it.
	body := fmt.Sprintf(`{"jobId": "%s", "referralCode": "%s"}`, jobID, code)
	req = httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
	req.AddCookie(applicantCookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The referrer's record is now completed.
	req = httptest.NewRequest("GET", "/api/careers/referrals", nil)
	req.AddCookie(referrerCookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	refs := env.store.referrals[referrer.ID]
	require.Len(t, refs, 1)
	assert.Equal(t, db.ReferralCompleted, refs[0].Status)
}

func TestListApplications_ByRole(t *testing.T) {
	env := newTestEnv(t)
	jobA := seedJob(t, env, db.JobPublished)
	jobB := seedJob(t, env, db.JobPublished)
	ada, adaCookie := env.seedCandidate(t, "ada@example.com")
	_, bobCookie := env.seedCandidate(t, "bob@example.com")

	for _, tc := range []struct {
		cookie *http.Cookie
		jobID  string
	}{
		{adaCookie, jobA.String()},
		{adaCookie, jobB.String()},
		{bobCookie, jobA.String()},
	} {
		body := fmt.Sprintf(`{"jobId": "%s"}`, tc.jobID)
		req := httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
		req.AddCookie(tc.cookie)
		rec := env.do(t, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	// Anonymous callers get nothing.
	rec := env.do(t, httptest.NewRequest("GET", "/api/careers/applications", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A candidate sees only their own.
	req := httptest.NewRequest("GET", "/api/careers/applications", nil)
	req.AddCookie(adaCookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decodeBody[map[string][]db.Application](t, rec)["applications"]
	require.Len(t, mine, 2)
	for _, app := range mine {
		assert.Equal(t, ada.ID, app.CandidateID)
	}

	// HR sees all three.
	req = httptest.NewRequest("GET", "/api/careers/applications", nil)
	req.AddCookie(env.hrCookie(t))
	rec = env.do(t, req)
	all := decodeBody[map[string][]db.Application](t, rec)["applications"]
	assert.Len(t, all, 3)
}

func TestReviewApplication(t *testing.T) {
	env := newTestEnv(t)
	jobID := seedJob(t, env, db.JobPublished)
	_, cookie := env.seedCandidate(t, "ada@example.com")

	body := fmt.Sprintf(`{"jobId": "%s"}`, jobID)
	req := httptest.NewRequest("POST", "/api/careers/applications", strings.NewReader(body))
	req.AddCookie(cookie)
	rec := env.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	appID := decodeBody[map[string]db.Application](t, rec)["application"].ID

	// Candidates cannot review.
	review := `{"status": "SHORTLISTED", "rating": 4}`
	req = httptest.NewRequest("PUT", "/api/careers/applications/"+appID.String(), strings.NewReader(review))
	req.AddCookie(cookie)
	rec = env.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest("PUT", "/api/careers/applications/"+appID.String(), strings.NewReader(review))
	req.AddCookie(env.hrCookie(t))
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	reviewed := decodeBody[map[string]db.Application](t, rec)["application"]
	assert.Equal(t, "SHORTLISTED", reviewed.Status)
	require.NotNil(t, reviewed.Rating)
	assert.Equal(t, 4, *reviewed.Rating)

	// Unknown status is rejected.
	req = httptest.NewRequest("PUT", "/api/careers/applications/"+appID.String(),
		strings.NewReader(`{"status": "HIRED"}`))
	req.AddCookie(env.hrCookie(t))
	rec = env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCandidates_HROnly(t *testing.T) {
	env := newTestEnv(t)
	env.seedCandidate(t, "ada@example.com")

	rec := env.do(t, httptest.NewRequest("GET", "/api/careers/candidates", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/api/careers/candidates", nil)
	req.AddCookie(env.hrCookie(t))
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	candidates := decodeBody[map[string][]db.Candidate](t, rec)["candidates"]
	require.Len(t, candidates, 1)
	assert.Equal(t, "ada@example.com", candidates[0].Email)
	assert.Empty(t, candidates[0].PasswordHash, "hash never serializes")
}

func TestCandidateProfile(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.seedCandidate(t, "ada@example.com")

	update := `{"name": "Ada Lovelace", "bio": "Engineer", "linkedInUrl": "https://linkedin.com/in/ada"}`
	req := httptest.NewRequest("PUT", "/api/careers/candidate/profile", strings.NewReader(update))
	req.AddCookie(cookie)
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req = httptest.NewRequest("GET", "/api/careers/candidate/profile", nil)
	req.AddCookie(cookie)
	rec = env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[map[string]db.Candidate](t, rec)["profile"]
	assert.Equal(t, "Ada Lovelace", profile.Name)
	assert.Equal(t, "Engineer", profile.Bio)
}

func multipartResume(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="resume.pdf"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadResume(t *testing.T) {
	env := newTestEnv(t)
	candidate, cookie := env.seedCandidate(t, "ada@example.com")

	buf, contentType := multipartResume(t, "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest("POST", "/api/careers/upload", buf)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	rec := env.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody[types.UploadResponse](t, rec)
	assert.Contains(t, body.URL, "/uploads/resumes/"+candidate.ID.String())
	assert.Equal(t, body.URL, env.store.candidates[candidate.ID].ResumePath)
}

func TestUploadResume_RejectsBadType(t *testing.T) {
	env := newTestEnv(t)
	_, cookie := env.seedCandidate(t, "ada@example.com")

	buf, contentType := multipartResume(t, "image/png", []byte("png bytes"))
	req := httptest.NewRequest("POST", "/api/careers/upload", buf)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(cookie)
	rec := env.do(t, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
