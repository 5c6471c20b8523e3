package mail

const welcomeTemplate = `
<div style="background:#f3f4f8;padding:32px;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;color:#111;">
  <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="max-width:640px;margin:0 auto;background:#ffffff;border-radius:18px;overflow:hidden;">
    <tr>
      <td style="background:linear-gradient(135deg,#0b5fff,#2563eb);padding:24px 24px 18px 24px;text-align:center;">
        {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.CompanyName}}" style="max-width:160px;height:auto;display:block;margin:0 auto 10px auto;" />{{end}}
        <div style="color:#dbeafe;font-size:12px;letter-spacing:.12em;text-transform:uppercase;">Recruitment &amp; Onboarding</div>
        <h1 style="color:#ffffff;margin:10px 0 4px 0;font-size:22px;font-weight:600;">Welcome, {{.Name}}</h1>
        <p style="color:#e0ebff;margin:0;font-size:13px;">Your candidate account has been created successfully.</p>
      </td>
    </tr>
    <tr>
      <td style="padding:24px 24px 12px 24px;">
        <p style="margin:0 0 12px 0;font-size:14px;line-height:1.6;">
          Thank you for your interest in <strong>{{.CompanyName}}</strong>. Your candidate portal access has been set up for the position below.
        </p>
        <div style="border:1px solid #e5e7eb;border-radius:14px;padding:16px;margin:18px 0;background:#f9fafb;">
          <div style="font-size:13px;font-weight:600;color:#111827;margin-bottom:8px;">Application Summary</div>
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-size:13px;">
            <tr><td style="padding:5px 0;width:160px;color:#6b7280;">Candidate Name</td><td style="padding:5px 0;"><strong>{{.Name}}</strong></td></tr>
            <tr><td style="padding:5px 0;color:#6b7280;">Post Applied For</td><td style="padding:5px 0;"><strong>{{.PostAppliedFor}}</strong></td></tr>
            <tr><td style="padding:5px 0;color:#6b7280;">Phone</td><td style="padding:5px 0;"><strong>{{.Phone}}</strong></td></tr>
            <tr><td style="padding:5px 0;color:#6b7280;">Email</td><td style="padding:5px 0;"><strong>{{.Email}}</strong></td></tr>
          </table>
        </div>
        <div style="border:1px dashed #cbd5f5;border-radius:14px;padding:16px;margin:16px 0;background:#eef2ff;">
          <div style="font-size:13px;font-weight:600;color:#1e293b;margin-bottom:8px;">Login Credentials</div>
          <table role="presentation" width="100%" cellpadding="0" cellspacing="0" style="font-size:13px;">
            <tr><td style="padding:5px 0;width:160px;color:#4b5563;">Username</td><td style="padding:5px 0;"><strong>{{.Phone}}</strong></td></tr>
            <tr><td style="padding:5px 0;color:#4b5563;">Temporary Password</td><td style="padding:5px 0;"><strong>{{.Password}}</strong></td></tr>
          </table>
          <p style="margin:10px 0 0 0;font-size:12px;color:#6b7280;">For security reasons, please change this password after your first login.</p>
        </div>
        <div style="text-align:center;margin:18px 0 28px 0;">
          <a href="{{.LoginURL}}" style="display:inline-block;padding:12px 22px;border-radius:999px;background:#0b5fff;color:#ffffff;text-decoration:none;font-weight:600;font-size:14px;">Open Candidate Portal</a>
        </div>
        <div style="border-top:1px solid #e5e7eb;padding-top:12px;font-size:12px;color:#6b7280;line-height:1.6;">
          <p style="margin:0 0 6px 0;"><strong>Next steps:</strong></p>
          <ul style="margin:0 0 8px 18px;padding:0;">
            <li>Log in using the credentials above.</li>
            <li>Review and complete your profile information.</li>
            <li>Upload any required documents (if applicable).</li>
          </ul>
          <p style="margin:0 0 6px 0;">If you did not initiate this registration, please contact our HR team immediately.</p>
          <p style="margin:0;">Warm regards,<br/><strong>{{.CompanyName}} HR &amp; Recruitment Team</strong></p>
        </div>
      </td>
    </tr>
  </table>
  <div style="text-align:center;color:#9ca3af;font-size:11px;margin-top:18px;">© {{.Year}} {{.CompanyName}}. All rights reserved.</div>
</div>
`
