// Package cuestionario owns the state of one survey session: the reference
// lists, the respondent's selections and answers, and the load/unlock/submit
// flags a presentation layer renders. Presentation code reads through
// Snapshot or Subscribe and changes state only through Controller methods.
//
// Lifecycle:
//
//	ctrl := cuestionario.New(loader, sources)
//	_ = ctrl.Initialize(ctx)      // concurrent fetch of the three lists
//	ctrl.SetAcademico(true)
//	ctrl.SelectUnidad(unitID)
//	ctrl.VerificarAcceso()        // unlocks the questionnaire
//	_ = ctrl.UpdateRespuesta(0, "...")
//	_ = ctrl.EnviarCuestionario(ctx)
package cuestionario
