// internal/platform/di/shared/secret_provider_sm.go
package shared

import (
	"context"
	"log"
	"strings"

	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// resolveSendGridAPIKey resolves the SendGrid API key.
// Priority: SENDGRID_API_KEY env -> Secret Manager (SENDGRID_SECRET_NAME).
// Empty result disables the mailer; checkout still succeeds without mail.
func resolveSendGridAPIKey(ctx context.Context, inf *Infra) string {
	if inf == nil || inf.Config == nil {
		return ""
	}

	if key := strings.TrimSpace(inf.Config.SendGridAPIKey); key != "" {
		log.Printf("[shared.infra] SendGrid key resolved from env")
		return key
	}

	if inf.SecretManager == nil {
		log.Printf("[shared.infra] SendGrid key not set and Secret Manager unavailable (mailer disabled)")
		return ""
	}

	secretID := strings.TrimSpace(inf.Config.SendGridSecretName)
	if secretID == "" {
		return ""
	}

	name := "projects/" + inf.ProjectID + "/secrets/" + secretID + "/versions/latest"
	resp, err := inf.SecretManager.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		log.Printf("[shared.infra] WARN: AccessSecretVersion failed for %s: %v (mailer disabled)", secretID, err)
		return ""
	}
	if resp == nil || resp.Payload == nil {
		log.Printf("[shared.infra] WARN: empty secret payload for %s (mailer disabled)", secretID)
		return ""
	}

	log.Printf("[shared.infra] SendGrid key resolved from Secret Manager")
	return strings.TrimSpace(string(resp.Payload.Data))
}
