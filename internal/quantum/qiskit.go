package quantum

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// QiskitConfig holds IBM Quantum API configuration for running circuits on
// remote simulators or hardware.
type QiskitConfig struct {
	// IBM Cloud API key.
	APIKey string

	// Base URL for the IBM Quantum API.
	BaseURL string

	// Backend name, e.g. "ibmq_qasm_simulator".
	BackendName string

	// MaxWait bounds how long Execute polls for a finished job.
	MaxWait time.Duration

	// PollInterval is the delay between job-status polls; defaults to 2s.
	PollInterval time.Duration

	// HTTP client; a 60s-timeout client is used when nil.
	HTTPClient *http.Client
}

// QiskitClient handles IBM Quantum API interactions: authentication, job
// submission and result retrieval.
type QiskitClient struct {
	config      *QiskitConfig
	accessToken string
	tokenExpiry time.Time
}

// qiskitJob mirrors the job object returned by the jobs endpoint.
type qiskitJob struct {
	ID      string         `json:"id"`
	Backend string         `json:"backend"`
	Status  string         `json:"status"`
	Counts  map[string]int `json:"counts,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// IBM Quantum API endpoints.
const (
	defaultQiskitURL    = "https://api.quantum-computing.ibm.com"
	qiskitTokenEndpoint = "/api/auth/login"
	qiskitJobsEndpoint  = "/api/Network/ibm-q/Groups/open/Projects/main/Jobs"
)

// Job status values reported by the API.
const (
	jobStatusCompleted = "COMPLETED"
	jobStatusFailed    = "FAILED"
	jobStatusCancelled = "CANCELLED"
)

// Remote execution errors.
var (
	// ErrMissingAPIKey is returned when a Qiskit client is configured
	// without credentials.
	ErrMissingAPIKey = errors.New("IBM Cloud API key is required")

	// ErrNoRemoteCounts is returned when a job completes but its status
	// payload carries no frequency table.
	ErrNoRemoteCounts = errors.New("completed job returned no counts")

	// ErrCountMismatch is returned when a remote frequency table does not
	// sum to the requested shot count.
	ErrCountMismatch = errors.New("remote counts do not sum to shots")
)

// NewQiskitClient creates a client and authenticates immediately so that
// configuration problems surface at construction time.
func NewQiskitClient(config *QiskitConfig) (*QiskitClient, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if config.BaseURL == "" {
		config.BaseURL = defaultQiskitURL
	}
	if config.MaxWait == 0 {
		config.MaxWait = 5 * time.Minute
	}
	if config.PollInterval == 0 {
		config.PollInterval = 2 * time.Second
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}

	client := &QiskitClient{config: config}
	if err := client.authenticate(); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	return client, nil
}

// authenticate obtains an access token from IBM Cloud.
func (c *QiskitClient) authenticate() error {
	payload, err := json.Marshal(map[string]string{"apiToken": c.config.APIKey})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.config.BaseURL+qiskitTokenEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("login rejected: %s (status: %d)", string(body), resp.StatusCode)
	}

	var result struct {
		TTL         int    `json:"ttl"`
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}

	c.accessToken = result.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(result.TTL) * time.Second)
	return nil
}

// ensureAuthenticated refreshes the token when it is near expiry.
func (c *QiskitClient) ensureAuthenticated() error {
	if time.Now().After(c.tokenExpiry.Add(-5 * time.Minute)) {
		return c.authenticate()
	}
	return nil
}

// SubmitJob submits an OpenQASM circuit for execution and returns the job ID.
func (c *QiskitClient) SubmitJob(qasm string, shots int) (string, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return "", err
	}

	payload, err := json.Marshal(map[string]interface{}{
		"qasm":    qasm,
		"shots":   shots,
		"backend": c.config.BackendName,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.config.BaseURL+qiskitJobsEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("job submission failed: %s (status: %d)", string(body), resp.StatusCode)
	}

	var job qiskitJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return "", err
	}
	return job.ID, nil
}

// jobStatus retrieves the current state of a job.
func (c *QiskitClient) jobStatus(jobID string) (*qiskitJob, error) {
	if err := c.ensureAuthenticated(); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s/%s", c.config.BaseURL, qiskitJobsEndpoint, jobID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("job status failed: %s (status: %d)", string(body), resp.StatusCode)
	}

	var job qiskitJob
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, err
	}
	return &job, nil
}

// WaitForCounts polls a job until it completes and returns its frequency
// table, or an error when the job fails or the wait budget runs out.
func (c *QiskitClient) WaitForCounts(jobID string) (map[string]int, error) {
	timeout := time.After(c.config.MaxWait)
	ticker := time.NewTicker(c.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			return nil, fmt.Errorf("job %s timed out after %v", jobID, c.config.MaxWait)
		case <-ticker.C:
			job, err := c.jobStatus(jobID)
			if err != nil {
				return nil, err
			}
			switch job.Status {
			case jobStatusCompleted:
				if len(job.Counts) == 0 {
					return nil, fmt.Errorf("job %s: %w", jobID, ErrNoRemoteCounts)
				}
				return job.Counts, nil
			case jobStatusFailed, jobStatusCancelled:
				return nil, fmt.Errorf("job %s ended with status %s: %s", jobID, job.Status, job.Error)
			}
		}
	}
}

// QiskitBackend runs circuits on IBM Quantum through a QiskitClient. It
// satisfies the same Backend contract as the local simulator so callers can
// swap executors without touching the pipeline.
type QiskitBackend struct {
	client *QiskitClient
}

// NewQiskitBackend wraps a client as an execution backend.
func NewQiskitBackend(client *QiskitClient) *QiskitBackend {
	return &QiskitBackend{client: client}
}

// Name returns the remote backend's identifier.
func (b *QiskitBackend) Name() string { return "ibm-quantum-" + b.client.config.BackendName }

// MaxQubits returns a conservative width limit for the open-access devices.
func (b *QiskitBackend) MaxQubits() int { return 27 }

// IsSimulator returns false; remote execution is treated as hardware even
// when the named device is IBM's hosted simulator.
func (b *QiskitBackend) IsSimulator() bool { return false }

// Execute renders the circuit to OpenQASM, submits it, and blocks until the
// frequency table is available.
func (b *QiskitBackend) Execute(c *Circuit, shots int) (*Result, error) {
	if shots < 1 {
		return nil, fmt.Errorf("shots %d: %w", shots, ErrInvalidShots)
	}
	if c.Len() == 0 {
		return nil, ErrEmptyCircuit
	}
	if c.NumQubits() > b.MaxQubits() {
		return nil, fmt.Errorf("%d qubits, limit %d: %w", c.NumQubits(), b.MaxQubits(), ErrTooManyQubits)
	}
	if !c.Measured() {
		return nil, ErrNotMeasured
	}
	qasm, err := c.QASM()
	if err != nil {
		return nil, err
	}

	jobID, err := b.client.SubmitJob(qasm, shots)
	if err != nil {
		return nil, fmt.Errorf("submitting circuit: %w", err)
	}
	counts, err := b.client.WaitForCounts(jobID)
	if err != nil {
		return nil, fmt.Errorf("retrieving counts: %w", err)
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != shots {
		return nil, fmt.Errorf("remote counts sum to %d, expected %d: %w", total, shots, ErrCountMismatch)
	}

	return &Result{
		JobID:   uuid.New(),
		Backend: b.Name(),
		Shots:   shots,
		Counts:  counts,
	}, nil
}
