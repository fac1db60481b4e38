package mail

const welcomeTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Welcome to Cropsight</h2>
  <p>Hi {{USERNAME}},</p>
  <p>Your account has been created with the email address <b>{{EMAIL}}</b>.</p>
  <p>Browse raw materials, manage your listings and connect with the other side of the market.</p>
  <p>The Cropsight team</p>
</div>`

const verifyOTPTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Verify your email</h2>
  <p>Hi {{USERNAME}},</p>
  <p>Your verification code is:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{OTP}}</p>
  <p>The code expires in 24 hours.</p>
</div>`

const resetOTPTemplate = `<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Password reset</h2>
  <p>Hi {{USERNAME}},</p>
  <p>Your password reset code is:</p>
  <p style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">{{OTP}}</p>
  <p>The code expires in 15 minutes. If you did not request a reset, ignore this mail.</p>
</div>`
