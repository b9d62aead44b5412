// 의료 어시스턴트 백엔드와 HTTP 통신하는 API gateway
//
// 환경변수:
//   - BACKEND_URL: 백엔드 URL (예: http://localhost:8000)
//
// 백엔드 엔드포인트:
//   - GET  /                       헬스체크
//   - POST /analyze-symptoms       증상 분석
//   - POST /chat                   채팅 응답
//   - GET  /medical-info/{name}    질환 정보
//   - GET  /rag-status             RAG 상태
//
// 실패는 두 종류로만 구분됩니다: 4xx는 ValidationError, 그 외는
// ServiceUnavailableError. 재시도는 하지 않습니다.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/docbot/web/internal/config"
	"github.com/docbot/web/internal/model"
	"go.uber.org/zap"
)

const maxErrorBody = 64 << 10

// operation - 작업별 로그 이름과 사용자 노출 메시지
type operation struct {
	name           string
	invalidMessage string // 비어 있으면 4xx도 연결 실패로 취급
	failureMessage string
}

var (
	opHealth = operation{
		name:           "health",
		failureMessage: "Unable to connect to server",
	}
	opRAGStatus = operation{
		name:           "rag_status",
		failureMessage: "Unable to retrieve knowledge base status",
	}
	opAnalyzeSymptoms = operation{
		name:           "analyze_symptoms",
		invalidMessage: "Invalid symptoms data",
		failureMessage: "Failed to analyze symptoms. Please try again.",
	}
	opChat = operation{
		name:           "chat",
		invalidMessage: "Invalid message",
		failureMessage: "Failed to send message. Please try again.",
	}
	opMedicalInfo = operation{
		name:           "medical_info",
		invalidMessage: "Invalid condition",
		failureMessage: "Failed to retrieve medical information. Please try again.",
	}
)

// BackendClient 구조체 정의
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// BackendClient 객체 생성
func NewBackendClient(cfg config.BackendConfig, log *zap.Logger) *BackendClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second // AI 분석 시간 고려
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &BackendClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.Named("backend"),
	}
}

func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

// GET / 백엔드 연결 확인
func (c *BackendClient) CheckHealth(ctx context.Context) (*model.HealthStatus, error) {
	var out model.HealthStatus
	if err := c.do(ctx, opHealth, http.MethodGet, "/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /rag-status 지식베이스(vector store) 준비 상태
func (c *BackendClient) RAGStatus(ctx context.Context) (*model.RAGStatus, error) {
	var out model.RAGStatus
	if err := c.do(ctx, opRAGStatus, http.MethodGet, "/rag-status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /analyze-symptoms 증상 분석 요청
func (c *BackendClient) AnalyzeSymptoms(ctx context.Context, req model.SymptomRequest) (*model.SymptomResult, error) {
	var out model.SymptomResult
	if err := c.do(ctx, opAnalyzeSymptoms, http.MethodPost, "/analyze-symptoms", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// POST /chat 채팅 메시지 전송. sessionID는 대화 단위로 호출자가 보관합니다.
func (c *BackendClient) SendChatMessage(ctx context.Context, message, sessionID string) (*model.ChatReply, error) {
	req := model.ChatRequest{
		Message:        message,
		ConversationID: sessionID,
	}
	var out model.ChatReply
	if err := c.do(ctx, opChat, http.MethodPost, "/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GET /medical-info/{condition} 질환 정보 조회
func (c *BackendClient) FetchConditionInfo(ctx context.Context, conditionName string) (*model.ConditionInfo, error) {
	var out model.ConditionInfo
	path := "/medical-info/" + pathSegment(conditionName)
	if err := c.do(ctx, opMedicalInfo, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) do(ctx context.Context, op operation, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.unavailable(op, 0, fmt.Errorf("failed to marshal request: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.unavailable(op, 0, fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	c.log.Info("api request", zap.String("op", op.name), zap.String("method", method), zap.String("path", path))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return c.unavailable(op, 0, fmt.Errorf("failed to send request to backend: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 && op.invalidMessage != "" {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := detailMessage(raw)
		if msg == "" {
			msg = op.invalidMessage
		}
		c.log.Error("api error",
			zap.String("op", op.name),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", msg),
		)
		return &ValidationError{Message: msg, Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.unavailable(op, resp.StatusCode, fmt.Errorf("backend returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw))))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.unavailable(op, resp.StatusCode, fmt.Errorf("failed to parse response: %w", err))
	}
	return nil
}

func (c *BackendClient) unavailable(op operation, status int, cause error) error {
	c.log.Error("api error", zap.String("op", op.name), zap.Int("status", status), zap.Error(cause))
	return &ServiceUnavailableError{Message: op.failureMessage, Status: status, Cause: cause}
}

// detailMessage - FastAPI 스타일 {"detail": "..."} 본문에서 메시지 추출.
// detail이 문자열이 아니면(422 검증 목록 등) 빈 문자열.
func detailMessage(raw []byte) string {
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if s, ok := body.Detail.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// pathSegment escapes every reserved character, spaces as %20.
func pathSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
