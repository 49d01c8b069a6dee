package controller

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/emersion/go-imap"
	imapclient "github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/EasonYD88/SURF-application-website/config"
	"github.com/EasonYD88/SURF-application-website/models"
	"github.com/EasonYD88/SURF-application-website/store"
	"github.com/EasonYD88/SURF-application-website/utils"
)

// MailController is the mail half of the companion process: it sends
// outreach email, connects the Gmail account, and checks threads for
// replies. Reply results are folded back into the tracker as ordinary
// patches through the store gate.
type MailController struct {
	store  *store.Store
	mailer *utils.Mailer
	hub    *DocumentHub
	logger *log.Logger

	oauthConfig *oauth2.Config
	oauthState  string
}

func NewMailController(s *store.Store, mailer *utils.Mailer, hub *DocumentHub, logger *log.Logger) *MailController {
	return &MailController{
		store:  s,
		mailer: mailer,
		hub:    hub,
		logger: logger,
		oauthConfig: &oauth2.Config{
			ClientID:     config.AppConfig.Google.ClientID,
			ClientSecret: config.AppConfig.Google.ClientSecret,
			RedirectURL:  config.AppConfig.Google.RedirectURI,
			Scopes: []string{
				"https://www.googleapis.com/auth/gmail.send",
				"https://www.googleapis.com/auth/gmail.readonly",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// SendMail delivers one outreach email. Failures come back as a single
// alert line; nothing is retried.
func (mc *MailController) SendMail(c *fiber.Ctx) error {
	var input struct {
		To      string   `json:"to" validate:"required,email"`
		CC      []string `json:"cc" validate:"omitempty,dive,email"`
		Subject string   `json:"subject" validate:"required,max=500"`
		Body    string   `json:"body"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}
	if err := checkmail.ValidateFormat(input.To); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Recipient address is not valid", err)
	}
	if ok, err := utils.ValidateMXRecords(input.To); !ok {
		// Deliverability warning only; some university domains hide MX.
		mc.logger.Printf("MX check failed for %s: %v", input.To, err)
	}

	if err := mc.mailer.Send([]string{input.To}, input.CC, input.Subject, input.Body); err != nil {
		utils.LogError("mail_send_failed", err, map[string]interface{}{"to": input.To})
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to send email", err)
	}

	utils.LogEvent("mail_sent", map[string]interface{}{"to": input.To})
	return c.JSON(utils.SuccessResponse(fiber.Map{"sent": true, "to": input.To}))
}

// GoogleOAuth starts the Gmail connect flow.
func (mc *MailController) GoogleOAuth(c *fiber.Ctx) error {
	if mc.oauthConfig.ClientID == "" {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Google OAuth is not configured", nil)
	}
	mc.oauthState = models.NewID()
	url := mc.oauthConfig.AuthCodeURL(mc.oauthState, oauth2.AccessTypeOffline)
	return c.Redirect(url, fiber.StatusTemporaryRedirect)
}

// GoogleOAuthCallback finishes the flow and persists the token to disk.
func (mc *MailController) GoogleOAuthCallback(c *fiber.Ctx) error {
	if c.Query("state") != mc.oauthState || mc.oauthState == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "OAuth state mismatch", nil)
	}
	code := c.Query("code")
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing authorization code", nil)
	}

	token, err := mc.oauthConfig.Exchange(c.Context(), code)
	if err != nil {
		utils.LogError("oauth_exchange_failed", err, nil)
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to exchange authorization code", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to encode token", err)
	}
	tokenFile := config.AppConfig.GoogleTokenFile
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store token", err)
	}
	if err := os.WriteFile(tokenFile, data, 0o600); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store token", err)
	}

	utils.LogEvent("gmail_connected", nil)
	return c.JSON(utils.SuccessResponse(fiber.Map{"connected": true}))
}

// CheckThread looks for a reply to one outreach thread over IMAP and, if
// one is found, folds it into the record as a normal patch.
func (mc *MailController) CheckThread(c *fiber.Ctx) error {
	id := c.Params("id")

	doc := mc.store.Load()
	contact := doc.FindOutreach(id)
	if contact == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Outreach record not found", nil)
	}
	if contact.ThreadID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Outreach record has no mail thread to check", nil)
	}

	reply, err := mc.fetchReply(contact.ThreadID)
	if err != nil {
		utils.LogError("reply_check_failed", err, map[string]interface{}{"outreach": id})
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Failed to check mail thread", err)
	}
	if reply == nil {
		return c.JSON(utils.SuccessResponse(fiber.Map{"replied": false}))
	}

	updated, err := mc.store.Apply(func(doc *models.Document) error {
		_, err := store.UpdateOutreach(doc, id, store.OutreachPatch{
			ReplyStatus:  utils.Pointer(models.ReplyGot),
			ReplyDate:    utils.Pointer(reply.Date.Format("2006-01-02")),
			ReplySummary: utils.Pointer(reply.Summary),
		})
		return err
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record reply", err)
	}
	mc.hub.NotifyUpdated(updated.Meta.UpdatedAt)

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"replied":  true,
		"document": updated,
	}))
}

// CheckOverdue lists outreach records past their follow-up date with no
// reply, the batch query behind the reminder digest.
func (mc *MailController) CheckOverdue(c *fiber.Ctx) error {
	due := store.OverdueOutreach(mc.store.Load(), time.Now())
	return c.JSON(utils.SuccessResponse(fiber.Map{
		"count": len(due),
		"due":   due,
	}))
}

type threadReply struct {
	Date    time.Time
	Summary string
}

// fetchReply searches the configured IMAP mailbox for a message replying
// to threadID and returns its date plus a short summary, or nil when the
// thread has no reply yet.
func (mc *MailController) fetchReply(threadID string) (*threadReply, error) {
	cfg := config.AppConfig.IMAP
	if cfg.Host == "" {
		return nil, fmt.Errorf("IMAP is not configured")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	imapClient, err := imapclient.DialTLS(addr, &tls.Config{ServerName: cfg.Host})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to IMAP server: %w", err)
	}
	defer imapClient.Logout()

	if err := imapClient.Login(cfg.Username, cfg.Password); err != nil {
		return nil, fmt.Errorf("failed to login to IMAP server: %w", err)
	}
	if _, err := imapClient.Select(cfg.Mailbox, true); err != nil {
		return nil, fmt.Errorf("failed to select mailbox: %w", err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("In-Reply-To", threadID)
	ids, err := imapClient.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// Newest reply wins.
	seqset := new(imap.SeqSet)
	seqset.AddNum(ids[len(ids)-1])
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- imapClient.Fetch(seqset, items, messages)
	}()

	msg := <-messages
	if err := <-done; err != nil {
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	if msg == nil || msg.Envelope == nil {
		return nil, fmt.Errorf("reply message could not be read")
	}

	summary := msg.Envelope.Subject
	if snippet := readTextSnippet(msg.GetBody(section)); snippet != "" {
		summary = summary + " - " + snippet
	}
	return &threadReply{Date: msg.Envelope.Date, Summary: summary}, nil
}

// readTextSnippet pulls the first inline text part, trimmed to a short
// summary line.
func readTextSnippet(r io.Reader) string {
	if r == nil {
		return ""
	}
	mr, err := mail.CreateReader(r)
	if err != nil {
		return ""
	}
	for {
		part, err := mr.NextPart()
		if err != nil {
			return ""
		}
		if _, ok := part.Header.(*mail.InlineHeader); ok {
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return ""
			}
			text := strings.Join(strings.Fields(string(body)), " ")
			if len(text) > 200 {
				text = text[:200] + "..."
			}
			return text
		}
	}
}
