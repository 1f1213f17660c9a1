package notify

import (
	"fmt"

	"campusride/internal/domain/models"
	"campusride/internal/utils"
)

// BookingConfirmation is the email sent to the user after a booking commits.
func BookingConfirmation(pnr models.PNR, driver models.Driver) Message {
	subject := fmt.Sprintf("Booking Confirmation - PNR: %s", pnr.PNRID)
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #333;">Your Ride is Confirmed!</h2>
      <p>Dear User,</p>
      <p>Your booking has been successfully confirmed. Here are your trip details:</p>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <p><strong>PNR Number:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
        <p><strong>Pick-up Location:</strong> %s</p>
        <p><strong>Drop-off Location:</strong> %s</p>
        <p><strong>Distance:</strong> %.2f km</p>
        <p><strong>Fare:</strong> %s</p>
      </div>

      <div style="background-color: #e9ecef; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <h3 style="margin-top: 0;">Driver Details</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Vehicle Number:</strong> %s</p>
        <p><strong>Vehicle Type:</strong> %s</p>
        <p><strong>Contact:</strong> %s</p>
      </div>

      <p>For any assistance, please contact our support team.</p>
      <p>Thank you for choosing our service!</p>
    </div>`,
		pnr.PNRID, pnr.Date, pnr.Time, pnr.LocationFrom, pnr.LocationTo,
		pnr.Distance, utils.FormatMoney(pnr.Price),
		driver.FullName(), driver.VehicleNumber, driver.VehicleType, driver.PhoneNumber,
	)
	return Message{Subject: subject, HTML: html}
}

// DriverTripNotice tells the driver a new booking landed on their schedule.
func DriverTripNotice(pnr models.PNR, user models.User) Message {
	subject := fmt.Sprintf("New Trip Assigned - PNR: %s", pnr.PNRID)
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #333;">New Trip Assigned</h2>
      <p>Dear Driver,</p>
      <p>A new booking has been confirmed for your schedule:</p>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <p><strong>PNR Number:</strong> %s</p>
        <p><strong>Date:</strong> %s</p>
        <p><strong>Time:</strong> %s</p>
        <p><strong>Pick-up Location:</strong> %s</p>
        <p><strong>Drop-off Location:</strong> %s</p>
        <p><strong>Total Distance:</strong> %.2f km</p>
        <p><strong>Total Fare:</strong> %s</p>
      </div>

      <div style="background-color: #e9ecef; padding: 20px; border-radius: 5px; margin: 20px 0;">
        <h3 style="margin-top: 0;">User Details</h3>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Contact:</strong> %s</p>
      </div>

      <p>Thank you for providing excellent service to our users!</p>
    </div>`,
		pnr.PNRID, pnr.Date, pnr.Time, pnr.LocationFrom, pnr.LocationTo,
		pnr.Distance, utils.FormatMoney(pnr.Price),
		user.FullName(), user.PhoneNumber,
	)
	return Message{Subject: subject, HTML: html}
}

// DriverVerification notifies a driver of an account status change.
func DriverVerification(driver models.Driver) Message {
	subject := "Account Verification Update"
	html := fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
      <h2 style="color: #333;">Account Status Updated</h2>
      <p>Dear %s,</p>
      <p>Your driver account status is now: <strong>%s</strong>.</p>
      <p>For any questions, please contact our support team.</p>
    </div>`,
		driver.FullName(), driver.Status,
	)
	return Message{Subject: subject, HTML: html}
}
